// Package dismiss closes a panel when the pointer is pressed outside of it.
package dismiss

// OutsideClick keeps at most one pointer-down listener on a Document, and
// only while the panel it guards is open.
type OutsideClick struct {
	doc     *Document
	release func()
}

// NewOutsideClick creates the behavior for doc. Nothing is attached until Sync
// is called with an open panel.
func NewOutsideClick(doc *Document) *OutsideClick {
	return &OutsideClick{doc: doc}
}

// Sync must be called whenever isOpen, bounds or onClose may have changed.
// The previous listener is always released first; a new one capturing the
// given values is attached only when isOpen is true. bounds is evaluated at
// event time.
func (o *OutsideClick) Sync(isOpen bool, bounds func() Rect, onClose func()) {
	o.Close()
	if !isOpen || bounds == nil || onClose == nil {
		return
	}
	o.release = o.doc.AddPointerDown(func(target Point) {
		if !bounds().Contains(target) {
			onClose()
		}
	})
}

// Attached reports whether a listener is currently registered.
func (o *OutsideClick) Attached() bool {
	return o.release != nil
}

// Close detaches the listener, if any.
func (o *OutsideClick) Close() {
	if o.release == nil {
		return
	}
	o.release()
	o.release = nil
}
