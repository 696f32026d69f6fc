package ringlist

// Cursor is a position in a List. It is either on an element or on the ghost
// position between the back and the front of the list.
//
// A cursor follows its element while the element is moved within the list.
// Once the element is removed through anything but the cursor, the cursor
// falls back to the ghost position, even if the element is inserted again.
type Cursor[T any, G GetLinks[T]] struct {
	list *List[T, G]
	cur  *T
	gen  uint64
}

// CursorFront returns a cursor on the front element.
func (l *List[T, G]) CursorFront() Cursor[T, G] {
	return l.cursor(l.Front())
}

// CursorBack returns a cursor on the back element.
func (l *List[T, G]) CursorBack() Cursor[T, G] {
	return l.cursor(l.Back())
}

// CursorAt returns a cursor on e. It returns false if e is not in l.
func (l *List[T, G]) CursorAt(e *T) (Cursor[T, G], bool) {
	if !l.Contains(e) {
		return Cursor[T, G]{list: l}, false
	}
	return l.cursor(e), true
}

func (l *List[T, G]) cursor(e *T) Cursor[T, G] {
	c := Cursor[T, G]{list: l}
	c.set(e)
	return c
}

func (c *Cursor[T, G]) set(e *T) {
	c.cur = e
	if e != nil {
		c.gen = c.list.links(e).gen
	}
}

// Current returns the element under the cursor or nil on the ghost position.
func (c *Cursor[T, G]) Current() *T {
	if c.cur != nil && (!c.list.Contains(c.cur) || c.list.links(c.cur).gen != c.gen) {
		c.cur = nil
	}
	return c.cur
}

// MoveNext moves the cursor to the next element. From the ghost position it
// moves to the front, from the back element to the ghost position.
func (c *Cursor[T, G]) MoveNext() {
	if cur := c.Current(); cur == nil {
		c.set(c.list.Front())
	} else {
		c.set(c.list.Next(cur))
	}
}

// MovePrev moves the cursor to the previous element. From the ghost position
// it moves to the back, from the front element to the ghost position.
func (c *Cursor[T, G]) MovePrev() {
	if cur := c.Current(); cur == nil {
		c.set(c.list.Back())
	} else {
		c.set(c.list.Prev(cur))
	}
}

// PeekNext returns the element MoveNext would move to.
func (c *Cursor[T, G]) PeekNext() *T {
	n := *c
	n.MoveNext()
	return n.cur
}

// PeekPrev returns the element MovePrev would move to.
func (c *Cursor[T, G]) PeekPrev() *T {
	p := *c
	p.MovePrev()
	return p.cur
}

// RemoveCurrent removes the element under the cursor and moves the cursor to
// the following element. It returns false on the ghost position.
func (c *Cursor[T, G]) RemoveCurrent() (*T, bool) {
	e := c.Current()
	if e == nil {
		return nil, false
	}
	next := c.list.Next(e)
	c.list.unlink(e)
	c.set(next)
	return e, true
}

// InsertAfter inserts e after the cursor. On the ghost position e becomes the
// front element. It returns false if e is nil or already linked.
func (c *Cursor[T, G]) InsertAfter(e *T) bool {
	if cur := c.Current(); cur != nil {
		return c.list.InsertAfter(cur, e)
	}
	return c.list.PushFront(e)
}

// InsertBefore inserts e before the cursor. On the ghost position e becomes
// the back element. It returns false if e is nil or already linked.
func (c *Cursor[T, G]) InsertBefore(e *T) bool {
	if cur := c.Current(); cur != nil {
		return c.list.InsertBefore(cur, e)
	}
	return c.list.PushBack(e)
}
