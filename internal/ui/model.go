package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/mdstyle/internal/article"
	"github.com/kyaoi/mdstyle/internal/catalog"
	"github.com/kyaoi/mdstyle/internal/dismiss"
	"github.com/kyaoi/mdstyle/internal/logger"
	"github.com/kyaoi/mdstyle/internal/panel"
	"github.com/kyaoi/mdstyle/internal/preview"
	"github.com/kyaoi/mdstyle/internal/styles"
)

const (
	headerHeight    = 1
	statusHeight    = 1
	minContentWidth = 20
)

var (
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#c0caf5")).
			Background(lipgloss.Color("#283457"))
	statusStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
)

// Model is the composition root: it owns the open flag of the style panel and
// the committed selection, and renders the article with the committed styles.
type Model struct {
	contentVP viewport.Model
	help      help.Model
	keys      KeyMap
	log       *logger.Logger

	catalog    catalog.Catalog
	isOpen     bool
	committed  catalog.SelectionState
	root       *styles.Root
	vars       styles.Variables
	stylesheet string
	panel      *panel.Model
	document   *dismiss.Document
	dismiss    *dismiss.OutsideClick

	article         article.Article
	renderedContent string
	showHelp        bool
	pendingKey      string
	ready           bool
	width           int
	height          int
	err             error

	search searchState

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	watchDone        chan struct{}
	initialWatchPath string
}

// NewModel constructs the model with the provided initial state. The default
// selection of the catalog is committed and applied right away.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)
	contentVP.SetHorizontalStep(2)

	log := state.Logger
	if log == nil {
		log = logger.Nop()
	}

	doc := dismiss.NewDocument()
	m := &Model{
		contentVP:        contentVP,
		help:             help.New(),
		keys:             DefaultKeyMap(),
		log:              log,
		catalog:          state.Catalog,
		committed:        state.Catalog.Default(),
		root:             styles.NewRoot(),
		document:         doc,
		dismiss:          dismiss.NewOutsideClick(doc),
		article:          state.Article,
		initialWatchPath: state.Article.Path,
		search:           newSearchState(),
	}
	m.help.ShowAll = true
	m.panel = panel.New(m.catalog, m.panelProps())
	m.applyStyles()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Close releases the pointer listener and the file watcher.
func (m *Model) Close() error {
	m.dismiss.Close()
	if m.watchDone != nil {
		close(m.watchDone)
		m.watchDone = nil
	}
	if m.watcher != nil {
		err := m.watcher.Close()
		m.watcher = nil
		m.watchDir = ""
		return err
	}
	return nil
}

// Committed returns the applied selection.
func (m *Model) Committed() catalog.SelectionState {
	return m.committed
}

// IsOpen reports whether the style panel is open.
func (m *Model) IsOpen() bool {
	return m.isOpen
}

// Root returns the page root the committed styles are written to.
func (m *Model) Root() *styles.Root {
	return m.root
}

func (m *Model) panelProps() panel.Props {
	return panel.Props{
		IsOpen:        m.isOpen,
		OnToggle:      m.togglePanel,
		InitialValues: m.committed,
		OnApply:       m.applySelection,
		OnReset:       m.resetSelection,
	}
}

func (m *Model) panelBounds() dismiss.Rect {
	if !m.isOpen {
		return dismiss.Rect{}
	}
	return dismiss.Rect{
		X:      0,
		Y:      headerHeight,
		Width:  panel.Width,
		Height: max(m.height-headerHeight-statusHeight, 0),
	}
}

// arrowBounds covers the header padding and the toggle arrow.
func arrowBounds() dismiss.Rect {
	return dismiss.Rect{X: 0, Y: 0, Width: 3, Height: headerHeight}
}

// handlePress dispatches a pointer press to the document. A press on the arrow
// opens a closed panel; when the panel is open the same press is an outside
// press that already closed it.
func (m *Model) handlePress(p dismiss.Point) {
	wasOpen := m.isOpen
	m.document.DispatchPointerDown(p)
	if !wasOpen && arrowBounds().Contains(p) {
		m.panel.Toggle()
	}
}

func (m *Model) togglePanel() {
	m.setOpen(!m.isOpen)
	m.log.WithFields(map[string]any{"open": m.isOpen}).Debug("style panel toggled")
}

func (m *Model) applySelection(s catalog.SelectionState) {
	m.log.WithFields(selectionFields(s)).Debug("selection applied")
	m.commit(s)
}

func (m *Model) resetSelection() {
	m.log.Debug("selection reset")
	m.commit(m.catalog.Default())
}

// commit stores s, closes the panel and re-applies the styles when the
// selection actually changed.
func (m *Model) commit(s catalog.SelectionState) {
	changed := s != m.committed
	m.committed = s
	m.setOpen(false)
	if changed {
		m.applyStyles()
	}
}

func (m *Model) setOpen(open bool) {
	m.isOpen = open
	m.panel.SetProps(m.panelProps())
	m.dismiss.Sync(m.isOpen, m.panelBounds, m.togglePanel)
	m.layout()
}

func (m *Model) applyStyles() {
	m.vars = m.root.Apply(m.committed)
	sheet, err := m.vars.Stylesheet()
	if err != nil {
		m.log.Error(err, "stylesheet export failed")
		sheet = m.vars.Declarations()
	}
	m.stylesheet = sheet
	m.renderArticle()
}

func selectionFields(s catalog.SelectionState) map[string]any {
	fields := make(map[string]any, len(catalog.Slots))
	for _, slot := range catalog.Slots {
		fields[strings.ReplaceAll(strings.ToLower(slot.Title()), " ", "_")] = s.Get(slot).Value
	}
	return fields
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		helpContent := lipgloss.JoinVertical(lipgloss.Left,
			"Help (? / esc to close)",
			"",
			m.help.FullHelpView(m.keys.FullHelp()),
			"",
			"Style panel",
			m.help.FullHelpView(m.panel.Keys().FullHelp()),
		)
		overlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	body := m.contentVP.View()
	if m.isOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), body)
	}

	footer := statusStyle.Width(max(m.width, 0)).Render(m.statusLine())
	if m.search.active {
		footer = statusStyle.Width(max(m.width, 0)).Render(m.search.input.View())
	} else if m.err != nil {
		footer = errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, footer)
}

func (m *Model) header() string {
	arrow := "▶"
	if m.isOpen {
		arrow = "◀"
	}
	title := m.article.Title
	if m.article.Author != "" {
		title += " · " + m.article.Author
	}
	return headerStyle.Width(max(m.width, 0)).Render(arrow + " " + title)
}

func (m *Model) statusLine() string {
	if status := m.search.statusLine(); status != "" {
		return status
	}
	line := fmt.Sprintf("%s %s  %s",
		m.committed.FontFamilyOption.Label,
		m.committed.FontSizeOption.Label,
		m.stylesheet,
	)
	if m.width > 2 {
		line = ansi.Truncate(line, m.width-2, "…")
	}
	return line
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		event := tea.MouseEvent(msg)
		if event.IsWheel() {
			var cmd tea.Cmd
			m.contentVP, cmd = m.contentVP.Update(msg)
			return m, cmd
		}
		if event.Action == tea.MouseActionPress {
			m.handlePress(dismiss.Point{X: event.X, Y: event.Y})
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	keyName := msg.String()
	if keyName != "g" {
		m.pendingKey = ""
	}

	if m.showHelp {
		switch keyName {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return nil
	}

	if m.isOpen {
		if keyName == "ctrl+c" {
			return tea.Quit
		}
		if m.panel.Update(msg) {
			return nil
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return nil
		}
		m.handleContentKey(msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Toggle):
		m.panel.Toggle()
		return nil
	case key.Matches(msg, m.keys.Search):
		return m.enterSearchMode()
	case key.Matches(msg, m.keys.Next):
		m.nextSearchMatch()
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.previousSearchMatch()
		return nil
	}

	if m.handleContentKey(msg) {
		return nil
	}
	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return cmd
}

func (m *Model) handleContentKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.contentVP.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.contentVP.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfDown):
		m.contentVP.HalfPageDown()
	case key.Matches(msg, m.keys.HalfUp):
		m.contentVP.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		if m.pendingKey == "g" {
			m.contentVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case key.Matches(msg, m.keys.Bottom):
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight+statusHeight {
		return
	}
	m.width = width
	m.height = height
	m.ready = true
	m.help.Width = width
	m.layout()
}

// layout sizes the panes for the current window and open flag. The article is
// re-rendered only when its pane changes width.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	contentHeight := max(m.height-headerHeight-statusHeight, 1)
	m.contentVP.Height = contentHeight
	m.panel.SetHeight(contentHeight)

	contentWidth := m.width
	if m.isOpen {
		contentWidth -= panel.Width
	}
	contentWidth = max(contentWidth, minContentWidth)
	if contentWidth == m.contentVP.Width && m.renderedContent != "" {
		return
	}
	m.contentVP.Width = contentWidth
	m.renderArticle()
}

func (m *Model) renderArticle() {
	if !m.ready {
		return
	}
	available := max(m.contentVP.Width-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	rendered, err := preview.Render(m.article.Body, m.vars, available)
	if err != nil {
		m.err = err
		m.log.Error(err, "article render failed")
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
	m.renderedContent = rendered
	m.onContentChanged()
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
