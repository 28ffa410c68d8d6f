package doodle

import "github.com/joodle/doodle/cache"

// DefaultPathCacheCapacity is the default number of decoded drawings kept.
const DefaultPathCacheCapacity = 100

// PathCache caches decoded path lists keyed by the raw drawing blob.
//
// Keys are content-addressed: byte-identical blobs share one entry, and
// since decoding is a pure function of the bytes, a cached value is always
// valid for its key. The cache is bounded with least-recently-used
// eviction and is safe for concurrent use.
//
// Note that a blob that fails to decode is cached like any other, with an
// empty path list as its value. Repeated lookups of the same bad bytes stay
// cheap, at the cost of that exact key staying empty until Clear is called.
//
// PathCache is an explicit dependency: construct one at the composition
// root and pass it to whatever rendering component needs it.
type PathCache struct {
	cache  *cache.Cache[string, []DecodedPath]
	decode func([]byte) []DecodedPath
}

// NewPathCache creates a path cache holding up to capacity decoded drawings.
// A capacity <= 0 disables caching: every Get decodes fresh.
//
// The decode function may be nil, in which case DecodePaths is used.
// Injecting a decode function lets tests observe decode calls.
func NewPathCache(capacity int, decode func([]byte) []DecodedPath) *PathCache {
	if decode == nil {
		decode = DecodePaths
	}
	return &PathCache{
		cache:  cache.New[string, []DecodedPath](capacity),
		decode: decode,
	}
}

// Get returns the decoded paths for the given blob, decoding on first use.
// The returned slice is shared with the cache; callers must not modify it.
func (c *PathCache) Get(blob []byte) []DecodedPath {
	return c.cache.GetOrCreate(string(blob), func() []DecodedPath {
		return c.decode(blob)
	})
}

// Clear empties the cache and its recency tracking.
func (c *PathCache) Clear() {
	c.cache.Clear()
}

// Len returns the number of cached drawings.
func (c *PathCache) Len() int {
	return c.cache.Len()
}

// Capacity returns the configured capacity.
func (c *PathCache) Capacity() int {
	return c.cache.Capacity()
}

// Stats returns hit/miss/eviction statistics.
func (c *PathCache) Stats() cache.Stats {
	return c.cache.Stats()
}
