package backend

import (
	"github.com/mgnsk/intrusive"
)

// Record is a cache record. It is linked into the backend's eviction list.
type Record[K comparable, V any] struct {
	links    intrusive.Links[Record[K, V]]
	Key      K
	Value    V
	deadline int64
}

type recordLinks[K comparable, V any] struct{}

func (recordLinks[K, V]) LinksOf(r *Record[K, V]) *intrusive.Links[Record[K, V]] {
	return &r.links
}

func (r *Record[K, V]) expired(now int64) bool {
	return r.deadline > 0 && r.deadline <= now
}
