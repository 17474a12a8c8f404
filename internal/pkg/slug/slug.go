package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Derive builds a URL slug from a title: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Derive(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Resolve picks the explicit slug when one was provided, otherwise derives
// one from the title. An explicit slug is never rewritten.
func Resolve(explicit, title string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	return Derive(title)
}
