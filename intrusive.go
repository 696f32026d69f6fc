/*
Package intrusive implements an intrusive doubly linked list that owns its elements.

Elements carry their own Links, so inserting an element allocates nothing.
Handing an element to the list transfers it to the list until it is popped,
removed or drained. Inserting an element that is already linked is a
programmer error and panics; removing an element the list does not hold
reports false.

Use package ringlist directly for the raw engine without ownership checks.
*/
package intrusive

import (
	"iter"

	"github.com/mgnsk/intrusive/ringlist"
	"github.com/pkg/errors"
)

// Links are the list pointers embedded in an element.
type Links[T any] = ringlist.Links[T]

// GetLinks maps an element to its Links.
type GetLinks[T any] = ringlist.GetLinks[T]

// Linker is the constraint for element types embedding Links.
type Linker[T any] = ringlist.Linker[T]

// Embedded is the GetLinks implementation for element types embedding Links.
type Embedded[T any, P Linker[T]] = ringlist.Embedded[T, P]

// List is a doubly linked list of *T owning its elements.
// The zero value is a ready to use empty list.
//
// List is not safe for concurrent use. Iterators must not be used while the
// list is being modified. A List must not be copied after first use.
type List[T any, G GetLinks[T]] struct {
	_    noCopy
	list ringlist.List[T, G]
}

// noCopy makes go vet's copylocks check report copies of List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates an empty list.
func New[T any, G GetLinks[T]]() *List[T, G] {
	return &List[T, G]{}
}

// Len returns the number of elements in the list.
func (l *List[T, G]) Len() int {
	return l.list.Len()
}

// Empty reports whether the list has no elements.
func (l *List[T, G]) Empty() bool {
	return l.list.Empty()
}

// Contains reports whether the list holds e.
func (l *List[T, G]) Contains(e *T) bool {
	return l.list.Contains(e)
}

// Front returns the first element of the list.
func (l *List[T, G]) Front() (*T, bool) {
	e := l.list.Front()
	return e, e != nil
}

// Back returns the last element of the list.
func (l *List[T, G]) Back() (*T, bool) {
	e := l.list.Back()
	return e, e != nil
}

// PushBack takes e and inserts it at the back of the list.
// It returns a cursor positioned on e.
func (l *List[T, G]) PushBack(e *T) Cursor[T, G] {
	mustNotBeNil(e)
	if !l.list.PushBack(e) {
		panic(ErrLinked)
	}
	return l.cursorAt(e)
}

// PushFront takes e and inserts it at the front of the list.
// It returns a cursor positioned on e.
func (l *List[T, G]) PushFront(e *T) Cursor[T, G] {
	mustNotBeNil(e)
	if !l.list.PushFront(e) {
		panic(ErrLinked)
	}
	return l.cursorAt(e)
}

// InsertAfter takes e and inserts it after mark.
// It returns a cursor positioned on e.
func (l *List[T, G]) InsertAfter(mark, e *T) Cursor[T, G] {
	mustNotBeNil(e)
	if !l.list.Contains(mark) {
		panic(ErrNotMember)
	}
	if !l.list.InsertAfter(mark, e) {
		panic(ErrLinked)
	}
	return l.cursorAt(e)
}

// InsertBefore takes e and inserts it before mark.
// It returns a cursor positioned on e.
func (l *List[T, G]) InsertBefore(mark, e *T) Cursor[T, G] {
	mustNotBeNil(e)
	if !l.list.Contains(mark) {
		panic(ErrNotMember)
	}
	if !l.list.InsertBefore(mark, e) {
		panic(ErrLinked)
	}
	return l.cursorAt(e)
}

// PopFront removes the front element and returns it to the caller.
func (l *List[T, G]) PopFront() (*T, bool) {
	e := l.list.PopFront()
	return e, e != nil
}

// PopBack removes the back element and returns it to the caller.
func (l *List[T, G]) PopBack() (*T, bool) {
	e := l.list.PopBack()
	return e, e != nil
}

// Remove removes e from the list and returns it to the caller.
// It returns false if the list does not hold e.
func (l *List[T, G]) Remove(e *T) (*T, bool) {
	if !l.list.Remove(e) {
		return nil, false
	}
	return e, true
}

// MoveToFront moves e to the front of the list.
// It returns false if the list does not hold e.
func (l *List[T, G]) MoveToFront(e *T) bool {
	return l.list.MoveToFront(e)
}

// MoveToBack moves e to the back of the list.
// It returns false if the list does not hold e.
func (l *List[T, G]) MoveToBack(e *T) bool {
	return l.list.MoveToBack(e)
}

// All returns an iterator over the elements in forward order.
func (l *List[T, G]) All() iter.Seq[*T] {
	return l.list.All()
}

// Backward returns an iterator over the elements in backward order.
func (l *List[T, G]) Backward() iter.Seq[*T] {
	return l.list.Backward()
}

// Values returns the elements in forward order.
func (l *List[T, G]) Values() []*T {
	values := make([]*T, 0, l.list.Len())
	for e := range l.list.All() {
		values = append(values, e)
	}
	return values
}

// Drain removes every element front to back and passes it to release.
// release may be nil.
func (l *List[T, G]) Drain(release func(e *T)) {
	for e := l.list.PopFront(); e != nil; e = l.list.PopFront() {
		if release != nil {
			release(e)
		}
	}
}

// Check verifies the list structure.
func (l *List[T, G]) Check() error {
	return errors.Wrap(l.list.Check(), "intrusive")
}

func mustNotBeNil[T any](e *T) {
	if e == nil {
		panic(ErrNilElement)
	}
}

func (l *List[T, G]) cursorAt(e *T) Cursor[T, G] {
	c, _ := l.list.CursorAt(e)
	return Cursor[T, G]{c: c}
}
