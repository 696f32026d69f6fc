package ringlist

// LinkState is the membership state of a Links field.
type LinkState uint8

// Link states.
const (
	// Unlinked links are not part of any list.
	Unlinked LinkState = iota
	// Linked links are threaded into exactly one list.
	Linked
)

// String returns the lowercase name of the state.
func (s LinkState) String() string {
	switch s {
	case Unlinked:
		return "unlinked"
	case Linked:
		return "linked"
	default:
		return "invalid"
	}
}

// Links are the list pointers of an element. Embed one Links field per list
// the element may be a member of at the same time.
//
// The zero value is unlinked.
type Links[T any] struct {
	next, prev *T
	owner      any
	gen        uint64
	state      LinkState
}

// NewLinks returns unlinked links.
func NewLinks[T any]() Links[T] {
	return Links[T]{}
}

// State returns the membership state.
func (l *Links[T]) State() LinkState {
	return l.state
}

// Linked reports whether the links are threaded into a list.
func (l *Links[T]) Linked() bool {
	return l.state == Linked
}

// ListLinks returns l. It makes types embedding Links satisfy Linker.
func (l *Links[T]) ListLinks() *Links[T] {
	return l
}

func (l *Links[T]) acquire(owner any) bool {
	if l.state != Unlinked {
		return false
	}
	l.state = Linked
	l.owner = owner
	return true
}

// release resets the links and starts a new generation. Cursors positioned
// on the element before its release no longer see it.
func (l *Links[T]) release() {
	*l = Links[T]{gen: l.gen + 1}
}

// GetLinks maps an element to the Links a list threads it through.
//
// Implementations are usually zero-size types with a value receiver:
//
//	type byAge struct{}
//
//	func (byAge) LinksOf(p *Person) *ringlist.Links[Person] { return &p.ageLinks }
//
// LinksOf must be pure and return the same Links for the same element.
type GetLinks[T any] interface {
	LinksOf(e *T) *Links[T]
}

// Linker is the constraint for element types embedding Links.
type Linker[T any] interface {
	*T
	ListLinks() *Links[T]
}

// Embedded is the GetLinks implementation for element types embedding Links.
type Embedded[T any, P Linker[T]] struct{}

// LinksOf returns the embedded links of e.
func (Embedded[T, P]) LinksOf(e *T) *Links[T] {
	return P(e).ListLinks()
}
