package backend

import "github.com/pkg/errors"

// RunGC runs an expiry pass as if the current time was now.
func (b *Backend[K, V]) RunGC(now int64) {
	b.runGC(now)
}

// Check verifies that the map and the eviction list agree.
func (b *Backend[K, V]) Check() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n := b.xmap.Size(); n != b.list.Len() {
		return errors.Errorf("map has %d records, list has %d", n, b.list.Len())
	}

	return b.list.Check()
}
