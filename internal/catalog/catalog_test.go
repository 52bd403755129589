package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArticleState(t *testing.T) {
	t.Parallel()

	state := DefaultArticleState
	assert.Equal(t, "Open Sans", state.FontFamilyOption.Value)
	assert.Equal(t, "18px", state.FontSizeOption.Value)
	assert.Equal(t, "#000", state.FontColor.Value)
	assert.Equal(t, "#fff", state.BackgroundColor.Value)
	assert.Equal(t, "800px", state.ContentWidth.Value)

	cat := Builtin()
	for _, slot := range Slots {
		assert.Equal(t, cat.Options(slot)[0], state.Get(slot), slot.Title())
	}
}

func TestBuiltinReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := Builtin()
	first.FontSizes[0] = Option{Value: "99px", Label: "huge"}

	second := Builtin()
	assert.Equal(t, "18px", second.FontSizes[0].Value)
	assert.Equal(t, "18px", DefaultArticleState.FontSizeOption.Value)
}

func TestSelectionStateWithReplacesOnlyOneSlot(t *testing.T) {
	t.Parallel()

	cat := Builtin()
	base := cat.Default()
	for _, slot := range Slots {
		opts := cat.Options(slot)
		next := base.With(slot, opts[len(opts)-1])

		assert.Equal(t, opts[len(opts)-1], next.Get(slot))
		for _, other := range Slots {
			if other != slot {
				assert.Equal(t, base.Get(other), next.Get(other))
			}
		}
	}
	assert.Equal(t, cat.Default(), base, "With must not mutate the receiver")
}

func TestCatalogContains(t *testing.T) {
	t.Parallel()

	cat := Builtin()
	assert.True(t, cat.Contains(cat.Default()))
	assert.Equal(t, 1, cat.IndexOf(FontSize, Option{Value: "24px"}))
	assert.Equal(t, -1, cat.IndexOf(FontSize, Option{Value: "13px"}))

	foreign := cat.Default().With(FontColor, Option{Value: "#123456", Label: "custom"})
	assert.False(t, cat.Contains(foreign))
	assert.False(t, cat.Contains(SelectionState{}))
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	doc := `
font_families:
  - {value: Georgia, label: Georgia, class_name: georgia}
  - {value: Arial, label: Arial}
font_sizes:
  - {value: 16px, label: small}
font_colors:
  - {value: "#111", label: Ink}
background_colors:
  - {value: "#eee", label: Paper}
content_widths:
  - {value: 700px, label: Medium}
`
	cat, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, cat.FontFamilies, 2)
	assert.Equal(t, "georgia", cat.FontFamilies[0].ClassName)

	def := cat.Default()
	assert.Equal(t, "Georgia", def.FontFamilyOption.Value)
	assert.Equal(t, "700px", def.ContentWidth.Value)
}

func TestParseCatalogRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	valid := func(extra string) string {
		return `
font_families: [{value: A, label: A}]
font_sizes: [{value: 1px, label: one}]
font_colors: [{value: "#000", label: black}]
background_colors: [{value: "#fff", label: white}]
` + extra
	}

	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "missing slot", doc: valid(""), msg: "ContentWidths is required"},
		{name: "empty slot", doc: valid("content_widths: []"), msg: "ContentWidths needs at least one option"},
		{name: "duplicate values", doc: valid("content_widths: [{value: 1px, label: a}, {value: 1px, label: b}]"), msg: "ContentWidths has duplicate values"},
		{name: "missing label", doc: valid("content_widths: [{value: 1px}]"), msg: "ContentWidths[0].Label is required"},
		{name: "unknown key", doc: valid("content_widths: [{value: 1px, label: a}]\nline_height: []"), msg: "line_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), cat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("font_families: []\n"), 0o644))
	_, err = Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), path)
}
