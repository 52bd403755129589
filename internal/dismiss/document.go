package dismiss

// Point is a cell position on the screen.
type Point struct {
	X, Y int
}

// Rect is a screen region. A zero-size rect contains nothing.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Listener receives pointer-down events.
type Listener func(target Point)

type registration struct {
	id       int
	listener Listener
}

// Document is the global pointer-down event target of the screen.
type Document struct {
	listeners []registration
	nextID    int
}

// NewDocument creates a document without listeners.
func NewDocument() *Document {
	return &Document{}
}

// AddPointerDown registers l and returns the func that removes it. Calling
// the returned func more than once is harmless.
func (d *Document) AddPointerDown(l Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, registration{id: id, listener: l})
	return func() { d.remove(id) }
}

func (d *Document) remove(id int) {
	for i, reg := range d.listeners {
		if reg.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

func (d *Document) registered(id int) bool {
	for _, reg := range d.listeners {
		if reg.id == id {
			return true
		}
	}
	return false
}

// DispatchPointerDown delivers a press at target to the listeners registered
// when the dispatch starts. A listener removed by an earlier one in the same
// dispatch is skipped.
func (d *Document) DispatchPointerDown(target Point) {
	snapshot := make([]registration, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, reg := range snapshot {
		if !d.registered(reg.id) {
			continue
		}
		reg.listener(target)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	return len(d.listeners)
}
