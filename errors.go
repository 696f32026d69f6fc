package intrusive

import "errors"

var (
	// ErrLinked is the panic value when inserting an element that is already linked.
	ErrLinked = errors.New("intrusive: element is already linked")

	// ErrNotMember is the panic value when inserting relative to an element the list does not hold.
	ErrNotMember = errors.New("intrusive: element is not in the list")

	// ErrNilElement is the panic value when inserting a nil element.
	ErrNilElement = errors.New("intrusive: nil element")
)
