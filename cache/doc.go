// Package cache provides a generic, thread-safe LRU cache.
//
// # Cache[K, V]
//
// A mutex-guarded cache with strict least-recently-used eviction: after any
// insertion completes, the entry count never exceeds the configured capacity.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// GetOrCreate is the preferred access method when the value is derived from
// the key: the create function runs under the cache lock, so concurrent
// lookups of the same missing key compute the value exactly once.
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
