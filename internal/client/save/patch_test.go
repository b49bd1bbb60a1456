package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_LastWriteWins(t *testing.T) {
	a := Patch{"title": "A", "slug": "a"}
	b := Patch{"slug": "b"}
	c := Patch{"slug": "c", "config": map[string]any{"theme": "dark"}}

	result := merge(a, b, c)

	assert.Equal(t, Patch{
		"title":  "A",
		"slug":   "c",
		"config": map[string]any{"theme": "dark"},
	}, result)
}

func TestMerge_FailedPatchUnderCurrentEdits(t *testing.T) {
	// Восстановление после неудачной попытки: свежие правки побеждают
	// значения из проигравшего patch.
	failed := Patch{"title": "old", "slug": "old-slug"}
	pending := Patch{"title": "newer"}

	result := merge(failed, pending)

	assert.Equal(t, "newer", result["title"])
	assert.Equal(t, "old-slug", result["slug"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := Patch{"title": "A"}
	b := Patch{"title": "B"}

	_ = merge(a, b)

	assert.Equal(t, "A", a["title"])
	assert.Equal(t, "B", b["title"])
}
