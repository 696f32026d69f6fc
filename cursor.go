package intrusive

import "github.com/mgnsk/intrusive/ringlist"

// Cursor is a position in a List. It is either on an element or on the ghost
// position between the back and the front of the list.
//
// A cursor stays usable across modifications of the list and follows its
// element while it is moved. If the element is removed through anything but
// the cursor, the cursor falls back to the ghost position and stays there even
// if the element is inserted again.
type Cursor[T any, G GetLinks[T]] struct {
	c ringlist.Cursor[T, G]
}

// CursorFront returns a cursor on the front element.
func (l *List[T, G]) CursorFront() Cursor[T, G] {
	return Cursor[T, G]{c: l.list.CursorFront()}
}

// CursorBack returns a cursor on the back element.
func (l *List[T, G]) CursorBack() Cursor[T, G] {
	return Cursor[T, G]{c: l.list.CursorBack()}
}

// Current returns the element under the cursor or nil on the ghost position.
// The element remains owned by the list.
func (c *Cursor[T, G]) Current() *T {
	return c.c.Current()
}

// MoveNext moves the cursor to the next element.
func (c *Cursor[T, G]) MoveNext() {
	c.c.MoveNext()
}

// MovePrev moves the cursor to the previous element.
func (c *Cursor[T, G]) MovePrev() {
	c.c.MovePrev()
}

// PeekNext returns the element after the cursor.
func (c *Cursor[T, G]) PeekNext() *T {
	return c.c.PeekNext()
}

// PeekPrev returns the element before the cursor.
func (c *Cursor[T, G]) PeekPrev() *T {
	return c.c.PeekPrev()
}

// RemoveCurrent removes the element under the cursor, returns it to the
// caller and moves the cursor to the following element.
func (c *Cursor[T, G]) RemoveCurrent() (*T, bool) {
	return c.c.RemoveCurrent()
}

// InsertAfter takes e and inserts it after the cursor, or at the front of the
// list on the ghost position.
func (c *Cursor[T, G]) InsertAfter(e *T) {
	mustNotBeNil(e)
	if !c.c.InsertAfter(e) {
		panic(ErrLinked)
	}
}

// InsertBefore takes e and inserts it before the cursor, or at the back of the
// list on the ghost position.
func (c *Cursor[T, G]) InsertBefore(e *T) {
	mustNotBeNil(e)
	if !c.c.InsertBefore(e) {
		panic(ErrLinked)
	}
}
