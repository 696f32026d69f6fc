/*
Package cache implements a key-value cache with capacity overflow eviction and item expiry.

Records are kept in an intrusive list in eviction order, so evicting the oldest
record and dropping an arbitrary key are both constant time.
*/
package cache

import (
	"runtime"
	"time"

	"github.com/mgnsk/intrusive/internal/backend"
)

// ErrClosed is returned when setting a value in a closed cache.
var ErrClosed = backend.ErrClosed

// Cache is an in-memory TTL cache with optional capacity.
type Cache[K comparable, V any] struct {
	backend *backend.Backend[K, V]
	ttl     time.Duration
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	cacheOpts := newDefaultCacheOptions()
	for _, opt := range opts {
		opt.apply(&cacheOpts)
	}

	b := backend.NewBackend[K, V](cacheOpts.capacity)
	b.Policy = cacheOpts.policy
	b.Logger = cacheOpts.logger.WithField("component", "cache")

	c := &Cache[K, V]{
		backend: b,
		ttl:     cacheOpts.ttl,
	}

	runtime.SetFinalizer(c, func(any) {
		b.Close()
	})

	return c
}

// Exists returns whether a value in the cache exists for key.
func (c *Cache[K, V]) Exists(key K) bool {
	_, ok := c.backend.Load(key)
	return ok
}

// Get returns the value stored in the cache for key.
func (c *Cache[K, V]) Get(key K) (value V, exists bool) {
	return c.backend.Load(key)
}

// Set a value for key with the default TTL. It returns whether an existing
// value was replaced.
func (c *Cache[K, V]) Set(key K, value V) (replaced bool, err error) {
	return c.backend.Store(key, value, c.ttl)
}

// SetTTL sets a value for key with ttl. The zero ttl never expires.
func (c *Cache[K, V]) SetTTL(key K, value V, ttl time.Duration) (replaced bool, err error) {
	return c.backend.Store(key, value, ttl)
}

// Evict a key and return its value.
func (c *Cache[K, V]) Evict(key K) (value V, ok bool) {
	return c.backend.Evict(key)
}

// Len returns the number of keys in the cache.
func (c *Cache[K, V]) Len() int {
	return c.backend.Len()
}

// Keys returns the keys in eviction order, the next key to be evicted first.
func (c *Cache[K, V]) Keys() []K {
	return c.backend.Keys()
}

// Close stops the expiry loop and evicts all keys.
func (c *Cache[K, V]) Close() error {
	runtime.SetFinalizer(c, nil)
	return c.backend.Close()
}
