package backend

// Policy is a cache eviction policy.
type Policy string

// Available cache eviction policies.
const (
	// FIFO evicts records in insertion order.
	FIFO Policy = "fifo"
	// LRU evicts the least recently loaded record first.
	LRU Policy = "lru"
)
