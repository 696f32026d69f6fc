package cache

import (
	"time"

	"github.com/mgnsk/intrusive/internal/backend"
	"github.com/sirupsen/logrus"
)

// Policy is a cache eviction policy.
type Policy = backend.Policy

// Available cache eviction policies.
const (
	// FIFO policy evicts records in insertion order.
	FIFO = backend.FIFO
	// LRU policy evicts the least recently used record first.
	LRU = backend.LRU
)

// Option configures a Cache created by New.
type Option interface {
	apply(*cacheOptions)
}

type cacheOptions struct {
	logger   logrus.FieldLogger
	policy   Policy
	capacity int
	ttl      time.Duration
}

func newDefaultCacheOptions() cacheOptions {
	return cacheOptions{
		logger: logrus.StandardLogger(),
		policy: FIFO,
	}
}

// WithCapacity limits the number of records. Storing past the limit evicts
// the record at the front of the eviction order.
//
// The zero value configures unbounded capacity. A negative capacity panics.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *cacheOptions) {
		if capacity < 0 {
			panic("cache: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithPolicy selects the eviction order, FIFO or LRU.
//
// The empty policy selects FIFO. Any other unknown policy panics.
func WithPolicy(policy Policy) Option {
	return funcOption(func(opts *cacheOptions) {
		switch policy {
		case "":
			opts.policy = FIFO

		case FIFO, LRU:
			opts.policy = policy

		default:
			panic("cache: invalid eviction policy '" + string(policy) + "'")
		}
	})
}

// WithTTL sets the expiry used by Set. SetTTL overrides it per record.
//
// The zero value stores records that never expire.
func WithTTL(ttl time.Duration) Option {
	return funcOption(func(opts *cacheOptions) {
		opts.ttl = ttl
	})
}

// WithLogger option configures the logger for eviction events.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *cacheOptions) {
		opts.logger = logger
	})
}

type funcOption func(*cacheOptions)

func (f funcOption) apply(opts *cacheOptions) {
	f(opts)
}
