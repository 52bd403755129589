package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdstyle/internal/article"
	"github.com/kyaoi/mdstyle/internal/catalog"
	"github.com/kyaoi/mdstyle/internal/logger"
)

func TestLoadInitialStateDefaults(t *testing.T) {
	t.Parallel()

	state, err := LoadInitialState("", "", logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, article.Sample(), state.Article)
	assert.Equal(t, catalog.Builtin(), state.Catalog)
	assert.NotNil(t, state.Logger)
}

func TestLoadInitialStateFromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	articlePath := filepath.Join(dir, "essay.md")
	require.NoError(t, os.WriteFile(articlePath, []byte("---\ntitle: Essay\n---\nbody\n"), 0o644))

	catalogPath := filepath.Join(dir, "catalog.yaml")
	doc := `
font_families: [{value: Georgia, label: Georgia}]
font_sizes: [{value: 20px, label: "20"}]
font_colors: [{value: "#222", label: Ink}]
background_colors: [{value: "#fafafa", label: Paper}]
content_widths: [{value: 720px, label: Column}]
`
	require.NoError(t, os.WriteFile(catalogPath, []byte(doc), 0o644))

	state, err := LoadInitialState(articlePath, catalogPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "Essay", state.Article.Title)
	assert.Equal(t, articlePath, state.Article.Path)
	assert.Equal(t, "Georgia", state.Catalog.Default().FontFamilyOption.Value)
}

func TestLoadInitialStateErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadInitialState(filepath.Join(dir, "notes.txt"), "", nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("plain"), 0o644))
	_, err = LoadInitialState(txt, "", nil)
	require.ErrorIs(t, err, article.ErrUnsupported)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("font_sizes: nope\n"), 0o644))
	_, err = LoadInitialState("", bad, nil)
	require.ErrorIs(t, err, catalog.ErrInvalid)
}
