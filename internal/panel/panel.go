// Package panel implements the article parameters form. The panel is fully
// controlled: its owner supplies the open flag, the committed selection and
// the callbacks through Props, and the panel only keeps the edits that have
// not been applied yet.
package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/mdstyle/internal/catalog"
)

// Props are the inputs handed down by the owner of the panel.
type Props struct {
	IsOpen        bool
	OnToggle      func()
	InitialValues catalog.SelectionState
	OnApply       func(catalog.SelectionState)
	OnReset       func()
}

// FormEvent is a submit or reset event raised by the form.
type FormEvent struct {
	defaultPrevented bool
}

// PreventDefault suppresses the event's default handling.
func (e *FormEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *FormEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

const (
	resetRow = iota + 5
	applyRow
	rowCount
)

// Model is the in-progress state of the form.
type Model struct {
	cat     catalog.Catalog
	props   Props
	values  catalog.SelectionState
	focus   int
	wasOpen bool
	height  int
	keys    KeyMap
}

// New creates a panel over cat seeded from props.InitialValues.
func New(cat catalog.Catalog, props Props) *Model {
	return &Model{
		cat:     cat,
		props:   props,
		values:  props.InitialValues,
		wasOpen: props.IsOpen,
		keys:    DefaultKeyMap(),
	}
}

// SetProps replaces the props. The in-progress values are re-seeded from
// InitialValues when the panel goes from closed to open.
func (m *Model) SetProps(p Props) {
	if p.IsOpen && !m.wasOpen {
		m.values = p.InitialValues
		m.focus = 0
	}
	m.wasOpen = p.IsOpen
	m.props = p
}

// IsOpen reports the open flag last received from the owner.
func (m *Model) IsOpen() bool {
	return m.props.IsOpen
}

// Values returns the in-progress selection.
func (m *Model) Values() catalog.SelectionState {
	return m.values
}

// Keys returns the panel key map.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Toggle asks the owner to flip the open flag.
func (m *Model) Toggle() {
	if m.props.OnToggle != nil {
		m.props.OnToggle()
	}
}

// Change records opt as the in-progress choice for slot.
func (m *Model) Change(slot catalog.Slot, opt catalog.Option) {
	m.values = m.values.With(slot, opt)
}

// Submit hands the in-progress selection to the owner. Closing the panel is
// up to OnApply.
func (m *Model) Submit(ev *FormEvent) {
	ev.PreventDefault()
	if m.props.OnApply != nil {
		m.props.OnApply(m.values)
	}
}

// Reset discards the in-progress edits and notifies the owner.
func (m *Model) Reset(ev *FormEvent) {
	ev.PreventDefault()
	m.values = m.props.InitialValues
	if m.props.OnReset != nil {
		m.props.OnReset()
	}
}

// Update handles a key press while the panel is open and reports whether the
// key was consumed.
func (m *Model) Update(msg tea.KeyMsg) bool {
	if !m.props.IsOpen {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus - 1 + rowCount) % rowCount
	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % rowCount
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Apply):
		return m.submit()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Toggle):
		m.Toggle()
	case key.Matches(msg, m.keys.Enter):
		switch m.focus {
		case applyRow:
			return m.submit()
		case resetRow:
			return m.reset()
		default:
			m.focus++
		}
	default:
		return false
	}
	return true
}

func (m *Model) submit() bool {
	var ev FormEvent
	m.Submit(&ev)
	return ev.DefaultPrevented()
}

func (m *Model) reset() bool {
	var ev FormEvent
	m.Reset(&ev)
	return ev.DefaultPrevented()
}

func (m *Model) cycle(delta int) {
	if m.focus >= len(catalog.Slots) {
		return
	}
	slot := catalog.Slots[m.focus]
	opts := m.cat.Options(slot)
	if len(opts) == 0 {
		return
	}
	idx := m.cat.IndexOf(slot, m.values.Get(slot))
	if idx < 0 {
		idx = 0
	}
	next := (idx + delta + len(opts)) % len(opts)
	m.Change(slot, opts[next])
}
