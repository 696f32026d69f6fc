package testing

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ring is a list that can be walked in both directions and verify itself.
type Ring[T any] interface {
	Len() int
	Check() error
	All() iter.Seq[*T]
	Backward() iter.Seq[*T]
}

// Project maps the elements of seq with f.
func Project[T, V any](seq iter.Seq[*T], f func(*T) V) []V {
	var out []V
	for e := range seq {
		out = append(out, f(e))
	}
	return out
}

// AssertRing asserts that l is a consistent ring whose elements map to want
// in forward order and to the reverse of want in backward order.
func AssertRing[T, V any](t testing.TB, l Ring[T], value func(*T) V, want ...V) {
	t.Helper()

	if err := l.Check(); err != nil {
		t.Fatalf("invalid ring: %+v", err)
	}

	if l.Len() != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), l.Len())
	}

	if diff := cmp.Diff(want, Project(l.All(), value), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("forward order mismatch (-want +got):\n%s", diff)
	}

	reversed := slices.Clone(want)
	slices.Reverse(reversed)

	if diff := cmp.Diff(reversed, Project(l.Backward(), value), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("backward order mismatch (-want +got):\n%s", diff)
	}
}
