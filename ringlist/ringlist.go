/*
Package ringlist implements a raw intrusive circular doubly linked list.

The list stores borrowed element pointers and threads them through Links
embedded in the elements themselves, so no memory is allocated per element.
It does not take ownership: the caller keeps every linked element reachable
and unmodified by anything but the list until it is removed.

The list is not safe for concurrent use.
*/
package ringlist

import (
	"iter"

	"github.com/pkg/errors"
)

// List is an intrusive circular doubly linked list.
// The zero value is a ready to use empty list.
//
// The front element is head and the back element is head's prev.
// A List must not be copied after first use. A stale copy reports itself empty
// and never unlinks elements of the list it was copied from.
type List[T any, G GetLinks[T]] struct {
	head *T
	len  int
}

func (l *List[T, G]) links(e *T) *Links[T] {
	var g G
	return g.LinksOf(e)
}

// Len returns the number of elements in the list.
func (l *List[T, G]) Len() int {
	if l.Front() == nil {
		return 0
	}
	return l.len
}

// Empty reports whether the list has no elements.
func (l *List[T, G]) Empty() bool {
	return l.Front() == nil
}

// Front returns the first element of the list or nil.
func (l *List[T, G]) Front() *T {
	if !l.Contains(l.head) {
		return nil
	}
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[T, G]) Back() *T {
	if l.Front() == nil {
		return nil
	}
	return l.links(l.head).prev
}

// Contains reports whether e is linked in l.
func (l *List[T, G]) Contains(e *T) bool {
	if e == nil {
		return false
	}
	lk := l.links(e)
	return lk.state == Linked && lk.owner == any(l)
}

// Next returns the element after e or nil if e is the back element
// or not in l.
func (l *List[T, G]) Next(e *T) *T {
	if !l.Contains(e) {
		return nil
	}
	if next := l.links(e).next; next != l.head {
		return next
	}
	return nil
}

// Prev returns the element before e or nil if e is the front element
// or not in l.
func (l *List[T, G]) Prev(e *T) *T {
	if !l.Contains(e) || e == l.head {
		return nil
	}
	return l.links(e).prev
}

// PushBack inserts e at the back of the list.
// It returns false and does nothing if e is nil or already linked.
func (l *List[T, G]) PushBack(e *T) bool {
	if e == nil || !l.links(e).acquire(l) {
		return false
	}
	l.pushBack(e)
	return true
}

// PushFront inserts e at the front of the list.
// It returns false and does nothing if e is nil or already linked.
func (l *List[T, G]) PushFront(e *T) bool {
	if e == nil || !l.links(e).acquire(l) {
		return false
	}
	l.pushBack(e)
	l.head = e
	return true
}

// InsertAfter inserts e after mark.
// It returns false and does nothing if mark is not in l or e is nil or
// already linked.
func (l *List[T, G]) InsertAfter(mark, e *T) bool {
	if !l.Contains(mark) || e == nil || !l.links(e).acquire(l) {
		return false
	}
	l.link(mark, e)
	return true
}

// InsertBefore inserts e before mark.
// It returns false and does nothing if mark is not in l or e is nil or
// already linked.
func (l *List[T, G]) InsertBefore(mark, e *T) bool {
	if !l.Contains(mark) || e == nil || !l.links(e).acquire(l) {
		return false
	}
	l.link(l.links(mark).prev, e)
	if mark == l.head {
		l.head = e
	}
	return true
}

// Remove unlinks e from the list and resets its links.
// It returns false and does nothing if e is not in l.
func (l *List[T, G]) Remove(e *T) bool {
	if !l.Contains(e) {
		return false
	}
	l.unlink(e)
	return true
}

// PopFront removes and returns the front element or nil if the list is empty.
func (l *List[T, G]) PopFront() *T {
	e := l.Front()
	if e != nil {
		l.unlink(e)
	}
	return e
}

// PopBack removes and returns the back element or nil if the list is empty.
func (l *List[T, G]) PopBack() *T {
	e := l.Back()
	if e != nil {
		l.unlink(e)
	}
	return e
}

// MoveToFront moves e to the front of the list.
// It returns false if e is not in l.
func (l *List[T, G]) MoveToFront(e *T) bool {
	if !l.Contains(e) {
		return false
	}
	if e != l.head {
		l.detach(e)
		l.link(l.links(l.head).prev, e)
		l.head = e
	}
	return true
}

// MoveToBack moves e to the back of the list.
// It returns false if e is not in l.
func (l *List[T, G]) MoveToBack(e *T) bool {
	if !l.Contains(e) {
		return false
	}
	switch {
	case e == l.head:
		// Rotating the ring makes the front element the back one.
		l.head = l.links(e).next
	case e != l.Back():
		l.detach(e)
		l.link(l.links(l.head).prev, e)
	}
	return true
}

// MoveAfter moves e to its new position after mark.
// It returns false if either element is not in l.
func (l *List[T, G]) MoveAfter(e, mark *T) bool {
	if !l.Contains(e) || !l.Contains(mark) {
		return false
	}
	if e == mark {
		return true
	}
	if e == l.head {
		l.head = l.links(e).next
	}
	l.detach(e)
	l.link(mark, e)
	return true
}

// MoveBefore moves e to its new position before mark.
// It returns false if either element is not in l.
func (l *List[T, G]) MoveBefore(e, mark *T) bool {
	if !l.Contains(e) || !l.Contains(mark) {
		return false
	}
	if e == mark {
		return true
	}
	if e == l.head {
		l.head = l.links(e).next
	}
	l.detach(e)
	l.link(l.links(mark).prev, e)
	if mark == l.head {
		l.head = e
	}
	return true
}

// Reset removes all elements, resetting their links.
func (l *List[T, G]) Reset() {
	for e := l.Front(); e != nil; e = l.Front() {
		l.unlink(e)
	}
}

// All returns an iterator over the elements in forward order.
// The list must not be modified during iteration.
func (l *List[T, G]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.Front(); e != nil; e = l.Next(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in backward order.
// The list must not be modified during iteration.
func (l *List[T, G]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := l.Back(); e != nil; e = l.Prev(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T, G]) Do(f func(e *T) bool) {
	for e := range l.All() {
		if !f(e) {
			return
		}
	}
}

// Check verifies the ring structure: following next len times from the front
// returns to the front, prev mirrors next, and every element is owned by l.
func (l *List[T, G]) Check() error {
	if l.head == nil {
		if l.len != 0 {
			return errors.Errorf("ringlist: empty list has length %d", l.len)
		}
		return nil
	}

	e := l.head
	for i := 0; i < l.len; i++ {
		lk := l.links(e)
		if lk.state != Linked || lk.owner != any(l) {
			return errors.Errorf("ringlist: element %d is not linked in this list", i)
		}
		if lk.next == nil || lk.prev == nil {
			return errors.Errorf("ringlist: element %d has nil links", i)
		}
		if l.links(lk.next).prev != e {
			return errors.Errorf("ringlist: element %d is not the prev of its next", i)
		}
		e = lk.next
	}
	if e != l.head {
		return errors.Errorf("ringlist: forward walk of %d steps did not return to the front", l.len)
	}

	for i := 0; i < l.len; i++ {
		e = l.links(e).prev
	}
	if e != l.head {
		return errors.Errorf("ringlist: backward walk of %d steps did not return to the front", l.len)
	}

	return nil
}

func (l *List[T, G]) pushBack(e *T) {
	if l.Front() == nil {
		lk := l.links(e)
		lk.next = e
		lk.prev = e
		l.head = e
		l.len = 1
		return
	}
	l.link(l.links(l.head).prev, e)
}

// link inserts acquired element s after mark.
func (l *List[T, G]) link(mark, s *T) {
	ml, sl := l.links(mark), l.links(s)
	n := ml.next
	ml.next = s
	sl.prev = mark
	l.links(n).prev = s
	sl.next = n
	l.len++
}

// detach takes e out of the ring without releasing its links.
// e must not be the only element.
func (l *List[T, G]) detach(e *T) {
	lk := l.links(e)
	l.links(lk.prev).next = lk.next
	l.links(lk.next).prev = lk.prev
	l.len--
}

func (l *List[T, G]) unlink(e *T) {
	lk := l.links(e)
	if lk.next == e {
		// Remove the only element.
		l.head = nil
		l.len--
	} else {
		if e == l.head {
			l.head = lk.next
		}
		l.detach(e)
	}
	lk.release()
}
