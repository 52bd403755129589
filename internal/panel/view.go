package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/mdstyle/internal/catalog"
)

// Width is the number of columns the panel occupies, border included.
const Width = 36

var (
	panelBorderColor = lipgloss.Color("#7aa2f7")
	panelStyle       = lipgloss.NewStyle().
				Width(Width-1).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderRight(true).
				BorderForeground(panelBorderColor).
				Background(lipgloss.Color("#1f2335"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c0caf5"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	focusStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
	buttonStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#c0caf5")).
			Background(lipgloss.Color("#283457"))
)

// FormRows is the number of rows the form needs to be shown whole.
const FormRows = 20

// SetHeight sets the number of rows the panel fills. A shorter form scrolls
// to keep the focused row visible.
func (m *Model) SetHeight(height int) {
	m.height = max(height, 0)
}

// View renders the form. A closed panel renders nothing.
func (m *Model) View() string {
	if !m.props.IsOpen {
		return ""
	}
	inner := Width - panelStyle.GetHorizontalFrameSize()

	lines := []string{titleStyle.Render("SET PARAMETERS"), ""}
	focusLine := 0
	for i, slot := range catalog.Slots {
		if slot == catalog.BackgroundColor {
			lines = append(lines, separatorStyle.Render(strings.Repeat("─", inner)), "")
		}
		lines = append(lines, labelStyle.Render(slot.Title()))
		if i == m.focus {
			focusLine = len(lines)
		}
		if slot == catalog.FontSize {
			lines = append(lines, m.radioRow(slot, i == m.focus))
		} else {
			lines = append(lines, m.selectRow(slot, i == m.focus, inner))
		}
		lines = append(lines, "")
	}
	if m.focus >= resetRow {
		focusLine = len(lines)
	}
	lines = append(lines, m.buttons())

	style := panelStyle
	if m.height > 0 {
		if len(lines) > m.height {
			start := min(max(focusLine+2-m.height, 0), len(lines)-m.height)
			lines = lines[start : start+m.height]
		}
		style = style.Height(m.height).MaxHeight(m.height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) selectRow(slot catalog.Slot, focused bool, width int) string {
	opt := m.values.Get(slot)
	text := fmt.Sprintf("‹ %s ›", opt.Label)
	if opt.Label != opt.Value {
		text = fmt.Sprintf("‹ %s (%s) ›", opt.Label, opt.Value)
	}
	if lipgloss.Width(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	if focused {
		return focusStyle.Render(text)
	}
	return valueStyle.Render(text)
}

func (m *Model) radioRow(slot catalog.Slot, focused bool) string {
	selected := m.values.Get(slot)
	parts := make([]string, 0, len(m.cat.Options(slot)))
	for _, opt := range m.cat.Options(slot) {
		mark := "( )"
		style := mutedStyle
		if opt.Value == selected.Value {
			mark = "(•)"
			style = valueStyle
			if focused {
				style = focusStyle
			}
		}
		parts = append(parts, style.Render(mark+" "+opt.Label))
	}
	return strings.Join(parts, " ")
}

func (m *Model) buttons() string {
	reset := buttonStyle
	apply := buttonStyle
	switch m.focus {
	case resetRow:
		reset = focusStyle.Padding(0, 1)
	case applyRow:
		apply = focusStyle.Padding(0, 1)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		reset.Render("Reset"),
		"  ",
		apply.Render("Apply"),
	)
}
