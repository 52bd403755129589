package preview

import (
	"strings"
	"testing"

	gstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdstyle/internal/catalog"
	"github.com/kyaoi/mdstyle/internal/styles"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width     string
		available int
		want      int
	}{
		{"800px", 200, 80},
		{"600px", 200, 60},
		{"800px", 50, 50},
		{"800px", 5, MinWidth},
		{"100px", 200, MinWidth},
		{"50%", 120, 120},
		{"", 90, 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Columns(tt.width, tt.available), "%s in %d", tt.width, tt.available)
	}
}

func TestMargin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(1), Margin("18px"))
	assert.Equal(t, uint(2), Margin("24px"))
	assert.Equal(t, uint(3), Margin("38px"))
	assert.Equal(t, uint(1), Margin("4px"))
	assert.Equal(t, uint(defaultMargin), Margin("1.5em"))
	assert.Equal(t, uint(defaultMargin), Margin("px"))
}

func TestStyleConfig(t *testing.T) {
	t.Parallel()

	vars := styles.Derive(catalog.DefaultArticleState)
	cfg := StyleConfig(vars)
	require.NotNil(t, cfg.Document.Color)
	require.NotNil(t, cfg.Document.BackgroundColor)
	require.NotNil(t, cfg.Document.Margin)
	assert.Equal(t, "#000", *cfg.Document.Color)
	assert.Equal(t, "#fff", *cfg.Document.BackgroundColor)
	assert.Equal(t, uint(1), *cfg.Document.Margin)
	assert.Equal(t, gstyles.TokyoNightStyleConfig.H1, cfg.H1)

	require.NotNil(t, gstyles.TokyoNightStyleConfig.Document.Color)
	assert.NotEqual(t, "#000", *gstyles.TokyoNightStyleConfig.Document.Color, "base style is left untouched")

	vars[styles.FontFamily] = "Days One"
	assert.Equal(t, gstyles.DraculaStyleConfig.H1, StyleConfig(vars).H1)

	vars[styles.FontFamily] = "Comic Sans"
	assert.Equal(t, gstyles.TokyoNightStyleConfig.H1, StyleConfig(vars).H1)
}

func TestRender(t *testing.T) {
	t.Parallel()

	vars := styles.Derive(catalog.DefaultArticleState)
	out, err := Render("# Heading\n\nHello preview.", vars, 120)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Heading")
	assert.Contains(t, plain, "Hello preview.")
	for _, line := range strings.Split(plain, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 120)
	}
}

func TestRenderWrapsToContainerWidth(t *testing.T) {
	t.Parallel()

	vars := styles.Derive(catalog.DefaultArticleState)
	vars[styles.ContainerWidth] = "300px"
	words := strings.Repeat("word ", 60)

	out, err := Render(words, vars, 300)
	require.NoError(t, err)

	lines := 0
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		if strings.Contains(line, "word") {
			lines++
			assert.LessOrEqual(t, len(strings.TrimSpace(line)), 30)
		}
	}
	assert.Greater(t, lines, 5)
}
