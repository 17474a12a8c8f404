package text

import "github.com/aurelia-studio/site-core/internal/models"

// Entry is one editable copy slot the site renders.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Catalog lists every text slot the frontend knows about, with the copy
// shipped before an editor ever touches the back office.
var Catalog = []Entry{
	{
		ID:    "hero_title",
		Label: "Hero Title",
		Value: "Welcome to my Creative Portfolio",
	},
	{
		ID:    "hero_subtitle",
		Label: "Hero Subtitle",
		Value: "I build digital experiences that live on the web.",
	},
	{
		ID:    "about_me",
		Label: "About Me",
		Value: "I am a passionate developer and designer with over 5 years of experience in creating modern web applications. My focus is on clean design, intuitive user experiences, and performant code.",
	},
}

// Merge overlays stored rows on the catalog. Every catalog slot is always
// present in the result; stored rows win on value, and rows for unknown IDs
// are appended after the catalog so nothing an editor saved is dropped.
func Merge(stored []models.TextModel) []Entry {
	byID := make(map[string]models.TextModel, len(stored))
	for _, row := range stored {
		byID[row.ID] = row
	}

	merged := make([]Entry, 0, len(Catalog))
	seen := make(map[string]struct{}, len(Catalog))
	for _, slot := range Catalog {
		entry := slot
		if row, ok := byID[slot.ID]; ok {
			entry.Value = row.Value
			if row.Label != "" {
				entry.Label = row.Label
			}
		}
		merged = append(merged, entry)
		seen[slot.ID] = struct{}{}
	}

	for _, row := range stored {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		merged = append(merged, Entry{ID: row.ID, Label: row.Label, Value: row.Value})
	}
	return merged
}
