// Package preview renders an article the way the page root's visual
// variables ask for it.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	gstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/mdstyle/internal/styles"
)

const (
	// MinWidth is the narrowest column count an article is wrapped to.
	MinWidth = 20

	defaultMargin   = 2
	pxPerColumn     = 10
	pxPerMarginCell = 12
)

var familyStyles = map[string]ansi.StyleConfig{
	"Open Sans":          gstyles.TokyoNightStyleConfig,
	"Ubuntu":             gstyles.DarkStyleConfig,
	"Cormorant Garamond": gstyles.PinkStyleConfig,
	"Days One":           gstyles.DraculaStyleConfig,
	"Merriweather":       gstyles.LightStyleConfig,
}

// StyleConfig builds the glamour style for vars. The font family selects the
// base style; colors and font size override the document block.
func StyleConfig(vars styles.Variables) ansi.StyleConfig {
	cfg, ok := familyStyles[vars[styles.FontFamily]]
	if !ok {
		cfg = gstyles.TokyoNightStyleConfig
	}
	if color := vars[styles.FontColor]; color != "" {
		cfg.Document.Color = &color
	}
	if bg := vars[styles.BackgroundColor]; bg != "" {
		cfg.Document.BackgroundColor = &bg
	}
	margin := Margin(vars[styles.FontSize])
	cfg.Document.Margin = &margin
	return cfg
}

// Margin converts a font size into the document margin, in cells.
func Margin(fontSize string) uint {
	px, ok := pixels(fontSize)
	if !ok {
		return defaultMargin
	}
	return uint(max(int(px)/pxPerMarginCell, 1))
}

// Columns converts a container width into a wrap width that fits available.
func Columns(containerWidth string, available int) int {
	cols := available
	if px, ok := pixels(containerWidth); ok {
		cols = min(int(px)/pxPerColumn, available)
	}
	return max(cols, MinWidth)
}

func pixels(length string) (float64, bool) {
	trimmed := strings.TrimSpace(length)
	if !strings.HasSuffix(trimmed, "px") {
		return 0, false
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "px"), 64)
	if err != nil || px <= 0 {
		return 0, false
	}
	return px, true
}

// Render renders markdown for a pane available columns wide. The article is
// wrapped to the container width and centred in the pane.
func Render(markdown string, vars styles.Variables, available int) (string, error) {
	width := Columns(vars[styles.ContainerWidth], available)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(StyleConfig(vars)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	if available > width {
		out = lipgloss.PlaceHorizontal(available, lipgloss.Center, out)
	}
	return out, nil
}
