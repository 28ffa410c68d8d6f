package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe LRU cache with a hard capacity.
// When an insertion pushes the cache over capacity, least recently used
// entries are evicted until the count is back at the capacity.
//
// A capacity <= 0 disables caching entirely: lookups always miss and
// nothing is stored. Callers get fresh values on every access.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	lru      *list.List // front = most recently used
	capacity int

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry is the value stored in each LRU list element.
// The key is kept for O(1) map deletion on eviction.
type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a new cache with the given capacity.
// A capacity <= 0 disables caching.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*list.Element),
		lru:      list.New(),
		capacity: capacity,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
// On a hit, the entry is marked most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.lru.MoveToFront(elem)
	c.hits.Add(1)
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// Set stores a value in the cache, marking it most recently used.
// If the key already exists its value is replaced.
func (c *Cache[K, V]) Set(key K, value V) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry[K, V]).value = value
		c.lru.MoveToFront(elem)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, or creates and caches it.
//
// The create function is called under the cache lock, so concurrent calls
// for the same missing key run create exactly once and can never corrupt
// the map or double-count the cache size. Keep create fast.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		c.hits.Add(1)
		return elem.Value.(*cacheEntry[K, V]).value
	}

	c.misses.Add(1)
	value := create()
	if c.capacity > 0 {
		c.insert(key, value)
	}
	return value
}

// insert adds a new entry at the front and evicts down to capacity.
// Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	c.entries[key] = c.lru.PushFront(&cacheEntry[K, V]{key: key, value: value})
	for c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry[K, V]).key)
		c.evictions.Add(1)
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(elem)
	delete(c.entries, key)
	return true
}

// Contains reports whether the key is cached without updating LRU order.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Oldest returns the least recently used key without removing it.
// Returns (zero, false) if the cache is empty.
func (c *Cache[K, V]) Oldest() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	oldest := c.lru.Back()
	if oldest == nil {
		var zero K
		return zero, false
	}
	return oldest.Value.(*cacheEntry[K, V]).key, true
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element)
	c.lru.Init()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured capacity.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the configured capacity.
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}
