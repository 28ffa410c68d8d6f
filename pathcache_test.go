package doodle

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

// countingDecoder wraps DecodePaths and counts invocations per blob.
type countingDecoder struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCountingDecoder() *countingDecoder {
	return &countingDecoder{calls: make(map[string]int)}
}

func (d *countingDecoder) decode(blob []byte) []DecodedPath {
	d.mu.Lock()
	d.calls[string(blob)]++
	d.mu.Unlock()
	return DecodePaths(blob)
}

func (d *countingDecoder) count(blob []byte) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[string(blob)]
}

func lineBlob(x float64) []byte {
	return []byte(fmt.Sprintf(`[{"points": [[0,0],[%g,0]]}]`, x))
}

func TestPathCacheDecodesOnce(t *testing.T) {
	dec := newCountingDecoder()
	pc := NewPathCache(DefaultPathCacheCapacity, dec.decode)

	blob := lineBlob(10)
	first := pc.Get(blob)
	second := pc.Get(blob)

	if dec.count(blob) != 1 {
		t.Errorf("decode called %d times, want 1", dec.count(blob))
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("path counts = %d, %d, want 1, 1", len(first), len(second))
	}
	if first[0].Path.Length() != second[0].Path.Length() {
		t.Error("repeated Get returned different geometry")
	}
}

func TestPathCacheLRUEviction(t *testing.T) {
	dec := newCountingDecoder()
	pc := NewPathCache(2, dec.decode)

	a, b, c := lineBlob(1), lineBlob(2), lineBlob(3)

	pc.Get(a)
	pc.Get(b)
	pc.Get(a) // touch a so b is now least recently used
	pc.Get(c) // evicts b

	if pc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pc.Len())
	}

	pc.Get(a)
	if dec.count(a) != 1 {
		t.Errorf("a decoded %d times, want 1 (should have survived)", dec.count(a))
	}
	pc.Get(b)
	if dec.count(b) != 2 {
		t.Errorf("b decoded %d times, want 2 (should have been evicted)", dec.count(b))
	}
}

func TestPathCacheClear(t *testing.T) {
	dec := newCountingDecoder()
	pc := NewPathCache(10, dec.decode)

	blob := lineBlob(5)
	pc.Get(blob)
	pc.Clear()

	if pc.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", pc.Len())
	}
	pc.Get(blob)
	if dec.count(blob) != 2 {
		t.Errorf("decode called %d times, want 2 after Clear", dec.count(blob))
	}
}

func TestPathCacheDisabled(t *testing.T) {
	dec := newCountingDecoder()
	pc := NewPathCache(0, dec.decode)

	blob := lineBlob(5)
	pc.Get(blob)
	pc.Get(blob)

	if dec.count(blob) != 2 {
		t.Errorf("decode called %d times, want 2 with caching disabled", dec.count(blob))
	}
	if pc.Len() != 0 {
		t.Errorf("Len() = %d, want 0 with caching disabled", pc.Len())
	}
}

func TestPathCacheCachesFailedDecode(t *testing.T) {
	dec := newCountingDecoder()
	pc := NewPathCache(10, dec.decode)

	bad := []byte(`corrupt!`)
	if paths := pc.Get(bad); len(paths) != 0 {
		t.Fatalf("got %d paths for malformed blob, want 0", len(paths))
	}
	pc.Get(bad)

	// The empty result is cached like any other value: the bad bytes are
	// parsed once and stay empty for that key until Clear.
	if dec.count(bad) != 1 {
		t.Errorf("decode called %d times, want 1", dec.count(bad))
	}
	if pc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pc.Len())
	}
}

func TestPathCacheConcurrentSameKey(t *testing.T) {
	var decodes atomic.Int64
	pc := NewPathCache(10, func(blob []byte) []DecodedPath {
		decodes.Add(1)
		return DecodePaths(blob)
	})

	blob := lineBlob(42)
	const goroutines = 16

	var wg sync.WaitGroup
	results := make([][]DecodedPath, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = pc.Get(blob)
		}(i)
	}
	wg.Wait()

	if got := decodes.Load(); got != 1 {
		t.Errorf("decode ran %d times for one key, want 1", got)
	}
	if pc.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (no double-counted entries)", pc.Len())
	}
	for i, paths := range results {
		if len(paths) != 1 {
			t.Errorf("goroutine %d got %d paths, want 1", i, len(paths))
		}
	}
}

func TestPathCacheStats(t *testing.T) {
	pc := NewPathCache(10, nil)

	blob := lineBlob(1)
	pc.Get(blob)
	pc.Get(blob)

	stats := pc.Stats()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
}
