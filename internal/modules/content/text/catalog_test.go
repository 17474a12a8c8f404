package text

import (
	"testing"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEmptyStoreReturnsCatalog(t *testing.T) {
	merged := Merge(nil)
	require.Len(t, merged, len(Catalog))
	for i, slot := range Catalog {
		assert.Equal(t, slot, merged[i])
	}
}

func TestMergeStoredValueWins(t *testing.T) {
	merged := Merge([]models.TextModel{
		{ID: "hero_title", Label: "Hero Title", Value: "Custom headline"},
	})

	require.Len(t, merged, len(Catalog))
	assert.Equal(t, "hero_title", merged[0].ID)
	assert.Equal(t, "Custom headline", merged[0].Value)
	assert.Equal(t, Catalog[1].Value, merged[1].Value)
}

func TestMergeKeepsUnknownRows(t *testing.T) {
	merged := Merge([]models.TextModel{
		{ID: "footer_note", Label: "Footer Note", Value: "All rights reserved"},
	})

	require.Len(t, merged, len(Catalog)+1)
	last := merged[len(merged)-1]
	assert.Equal(t, "footer_note", last.ID)
	assert.Equal(t, "All rights reserved", last.Value)
}

func TestMergeEmptyStoredLabelFallsBack(t *testing.T) {
	merged := Merge([]models.TextModel{
		{ID: "about_me", Value: "Short bio"},
	})

	var about Entry
	for _, e := range merged {
		if e.ID == "about_me" {
			about = e
		}
	}
	assert.Equal(t, "About Me", about.Label)
	assert.Equal(t, "Short bio", about.Value)
}
