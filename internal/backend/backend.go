/*
Package backend implements cache backend.
*/
package backend

import (
	"encoding/gob"
	"errors"
	"hash/maphash"
	"sync"
	"time"

	"github.com/mgnsk/intrusive"
	"github.com/puzpuzpuz/xsync/v2"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned when storing into a closed backend.
var ErrClosed = errors.New("backend: closed")

// Backend implements cache backend.
// The map and the list always hold the same set of records. Writers hold mu;
// FIFO loads read the map without locking.
type Backend[K comparable, V any] struct {
	Policy           Policy
	Logger           logrus.FieldLogger
	timer            *time.Timer
	done             chan struct{}
	xmap             *xsync.MapOf[K, *Record[K, V]]
	list             intrusive.List[Record[K, V], recordLinks[K, V]]
	earliestExpireAt int64
	cap              int
	closed           bool
	once             sync.Once
	wg               sync.WaitGroup
	mu               sync.Mutex
}

// NewBackend creates a new cache backend.
func NewBackend[K comparable, V any](capacity int) *Backend[K, V] {
	t := time.NewTimer(0)
	<-t.C

	return &Backend[K, V]{
		Policy: FIFO,
		Logger: logrus.StandardLogger(),
		timer:  t,
		done:   make(chan struct{}),
		xmap:   xsync.NewTypedMapOf[K, *Record[K, V]](hashKey[K]),
		cap:    capacity,
	}
}

func hashKey[K comparable](seed maphash.Seed, key K) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	enc := gob.NewEncoder(&h)
	if err := enc.Encode(key); err != nil {
		panic(err)
	}

	return h.Sum64()
}

// Close stops the backend cleanup loop and evicts all records.
func (b *Backend[K, V]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	close(b.done)

	b.list.Drain(func(r *Record[K, V]) {
		b.xmap.Delete(r.Key)
	})
	b.mu.Unlock()

	b.wg.Wait()

	return nil
}

// Len returns the number of records.
func (b *Backend[K, V]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.list.Len()
}

// Keys returns the keys in eviction order.
func (b *Backend[K, V]) Keys() []K {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]K, 0, b.list.Len())
	for r := range b.list.All() {
		keys = append(keys, r.Key)
	}

	return keys
}

// Load the value stored for key.
func (b *Backend[K, V]) Load(key K) (value V, ok bool) {
	r, ok := b.xmap.Load(key)
	if !ok {
		return value, false
	}

	now := time.Now().UnixNano()

	if b.Policy != LRU && !r.expired(now) {
		return r.Value, true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// The record may have been replaced or evicted meanwhile.
	if r, ok = b.xmap.Load(key); !ok {
		return value, false
	}

	if r.expired(now) {
		b.deleteLocked(r, "expired")
		return value, false
	}

	if b.Policy == LRU {
		b.list.MoveToBack(r)
	}

	return r.Value, true
}

// Store a value for key. It returns whether an existing record was replaced.
func (b *Backend[K, V]) Store(key K, value V, ttl time.Duration) (replaced bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false, ErrClosed
	}

	r := &Record[K, V]{
		Key:   key,
		Value: value,
	}
	if ttl > 0 {
		r.deadline = time.Now().Add(ttl).UnixNano()
	}

	if old, ok := b.xmap.Load(key); ok {
		b.list.Remove(old)
		replaced = true
	}

	b.xmap.Store(key, r)
	b.list.PushBack(r)

	for b.cap > 0 && b.list.Len() > b.cap {
		front, _ := b.list.PopFront()
		b.xmap.Delete(front.Key)
		b.logEviction(front, "capacity")
	}

	if r.deadline > 0 {
		b.startGCOnce()
		if b.earliestExpireAt == 0 || r.deadline < b.earliestExpireAt {
			b.earliestExpireAt = r.deadline
			b.timer.Reset(ttl)
		}
	}

	return replaced, nil
}

// Evict a record.
func (b *Backend[K, V]) Evict(key K) (value V, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.xmap.LoadAndDelete(key)
	if !ok {
		return value, false
	}

	b.list.Remove(r)

	return r.Value, true
}

func (b *Backend[K, V]) deleteLocked(r *Record[K, V], reason string) {
	b.list.Remove(r)
	b.xmap.Delete(r.Key)
	b.logEviction(r, reason)
}

func (b *Backend[K, V]) logEviction(r *Record[K, V], reason string) {
	b.Logger.WithFields(logrus.Fields{
		"key":    r.Key,
		"reason": reason,
	}).Debug("backend: evicted record")
}

func (b *Backend[K, V]) startGCOnce() {
	b.once.Do(func() {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			for {
				select {
				case <-b.done:
					b.timer.Stop()
					return
				case now := <-b.timer.C:
					b.runGC(now.UnixNano())
				}
			}
		}()
	})
}

func (b *Backend[K, V]) runGC(now int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var earliest int64

	c := b.list.CursorFront()
	for r := c.Current(); r != nil; r = c.Current() {
		if r.expired(now) {
			c.RemoveCurrent()
			b.xmap.Delete(r.Key)
			b.logEviction(r, "expired")
			continue
		}

		if r.deadline > 0 && (earliest == 0 || r.deadline < earliest) {
			earliest = r.deadline
		}

		c.MoveNext()
	}

	b.earliestExpireAt = earliest
	if earliest > 0 {
		b.timer.Reset(time.Duration(earliest - now))
	}
}
