package gallery

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// buildObjectKey derives a collision-free storage key from the uploaded
// filename: a random token plus the upload timestamp, keeping only the
// original extension.
func buildObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s_%d%s", randomToken(), time.Now().UnixMilli(), ext)
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// keyFromURL recovers the storage key from a public URL: the last path
// segment. Returns "" when the URL has no usable path.
func keyFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	segment := path.Base(parsed.Path)
	if segment == "." || segment == "/" {
		return ""
	}
	return segment
}

func detectContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	switch strings.ToLower(path.Ext(header.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".avif":
		return "image/avif"
	default:
		return "application/octet-stream"
	}
}
