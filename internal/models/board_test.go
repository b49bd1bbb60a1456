package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBoardPatch_IsEmpty(t *testing.T) {
	tests := []struct {
		patch *BoardPatch
		name  string
		empty bool
	}{
		{
			name:  "empty patch",
			patch: &BoardPatch{},
			empty: true,
		},
		{
			name:  "title only",
			patch: &BoardPatch{Title: strPtr("New title")},
			empty: false,
		},
		{
			name:  "empty string title is still a change",
			patch: &BoardPatch{Title: strPtr("")},
			empty: false,
		},
		{
			name:  "blocks only",
			patch: &BoardPatch{Blocks: []Block{}},
			empty: false,
		},
		{
			name:  "config only",
			patch: &BoardPatch{Config: map[string]any{"theme": "dark"}},
			empty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.patch.IsEmpty())
		})
	}
}

func TestBoard_Apply(t *testing.T) {
	board := &Board{
		ID:     "board-1",
		Title:  "Old title",
		Slug:   "old-slug",
		Config: map[string]any{"theme": "light"},
		Blocks: []Block{
			{ID: "block-1", Type: "text", Position: 0},
		},
	}

	board.Apply(&BoardPatch{
		Title: strPtr("New title"),
		Blocks: []Block{
			{ID: "block-1", Type: "text", Position: 1},
			{ID: "block-2", Type: "image", Position: 0},
		},
	})

	assert.Equal(t, "New title", board.Title)
	assert.Equal(t, "old-slug", board.Slug, "slug was not in patch")
	assert.Equal(t, map[string]any{"theme": "light"}, board.Config)
	assert.Len(t, board.Blocks, 2)
}

func TestBoard_Apply_EmptyValues(t *testing.T) {
	board := &Board{Title: "Title", Slug: "slug"}

	// Пустая строка в patch затирает значение, nil не трогает
	board.Apply(&BoardPatch{Title: strPtr("")})

	assert.Equal(t, "", board.Title)
	assert.Equal(t, "slug", board.Slug)
}
