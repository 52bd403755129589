package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// searchState tracks the search bar and the lines of the rendered article
// that match the current query.
type searchState struct {
	input   textinput.Model
	active  bool
	query   string
	matches []int
	index   int
}

func newSearchState() searchState {
	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 256
	input.Placeholder = "search"
	input.Blur()
	return searchState{input: input, index: -1}
}

func (s *searchState) statusLine() string {
	if s.query == "" {
		return ""
	}
	if len(s.matches) == 0 || s.index < 0 {
		return fmt.Sprintf("/%s (0/0)", s.query)
	}
	return fmt.Sprintf("/%s (%d/%d)", s.query, s.index+1, len(s.matches))
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.search.input.Value())
		m.exitSearchMode()
		if query == "" {
			m.clearSearch()
			return nil
		}
		m.performSearch(query)
		return nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.exitSearchMode()
		return nil
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return cmd
}

func (m *Model) enterSearchMode() tea.Cmd {
	m.search.active = true
	m.pendingKey = ""
	m.search.input.SetValue(m.search.query)
	m.search.input.CursorEnd()
	return m.search.input.Focus()
}

func (m *Model) exitSearchMode() {
	m.search.active = false
	m.search.input.Blur()
}

func (m *Model) clearSearch() {
	m.search.query = ""
	m.search.matches = nil
	m.search.index = -1
	m.err = nil
}

func (m *Model) performSearch(query string) {
	m.search.query = query
	m.search.matches = findSearchMatches(m.renderedContent, query)
	if len(m.search.matches) == 0 {
		m.search.index = -1
		m.err = fmt.Errorf("no match for %q", query)
		return
	}
	m.search.index = 0
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.search.matches) == 0 {
		return
	}
	m.search.index = (m.search.index + 1) % len(m.search.matches)
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.search.matches) == 0 {
		return
	}
	if m.search.index <= 0 {
		m.search.index = len(m.search.matches) - 1
	} else {
		m.search.index--
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	if len(m.search.matches) == 0 || m.search.index < 0 {
		return
	}
	totalLines := strings.Count(m.renderedContent, "\n") + 1
	target := m.search.matches[m.search.index]
	m.contentVP.SetYOffset(clamp(target, 0, max(totalLines-m.contentVP.Height, 0)))
}

// onContentChanged recomputes the matches after a re-render and keeps the
// cursor on the match closest to the previous one.
func (m *Model) onContentChanged() {
	if m.search.query == "" {
		return
	}
	prevLine := -1
	if m.search.index >= 0 && m.search.index < len(m.search.matches) {
		prevLine = m.search.matches[m.search.index]
	}

	m.search.matches = findSearchMatches(m.renderedContent, m.search.query)
	if len(m.search.matches) == 0 {
		m.search.index = -1
		m.err = fmt.Errorf("no match for %q", m.search.query)
		return
	}
	if prevLine >= 0 {
		m.search.index = closestMatchIndex(m.search.matches, prevLine)
	} else {
		m.search.index = 0
	}
	m.err = nil
	m.gotoSearchMatch()
}

func findSearchMatches(content, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || content == "" {
		return nil
	}
	stripped := ansi.Strip(content)
	lowerContent := strings.ToLower(stripped)
	lowerQuery := strings.ToLower(query)

	var matches []int
	offset := 0
	for {
		pos := strings.Index(lowerContent[offset:], lowerQuery)
		if pos == -1 {
			break
		}
		absolute := offset + pos
		matches = append(matches, strings.Count(stripped[:absolute], "\n"))
		offset = absolute + len(lowerQuery)
	}
	return matches
}

func closestMatchIndex(matches []int, line int) int {
	best := 0
	bestDiff := -1
	for i, match := range matches {
		diff := match - line
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}
