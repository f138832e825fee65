package wavetable

import (
	"strconv"
	"sync"

	"github.com/cwbudde/algo-synth/synth/waveform"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	name string
	size int
}

// Cache memoizes rendered tables by (template name, table size).
// Concurrent misses for the same key compute at most once; hits are
// served under a read lock. The cache owns the stored buffers: callers
// must treat returned tables as read-only.
//
// Keying by name relies on templates being immutable for the process
// lifetime, which the catalogs guarantee.
type Cache struct {
	syn *Synthesizer

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[cacheKey][]float64
}

// NewCache creates a cache around the given synthesizer. A nil
// synthesizer uses default serial rendering.
func NewCache(s *Synthesizer) *Cache {
	if s == nil {
		s = New()
	}
	return &Cache{
		syn:     s,
		entries: make(map[cacheKey][]float64),
	}
}

// Get returns the memoized table for (t.Name, n), rendering it on first
// use. Rendering errors are returned to every concurrent caller and
// nothing is cached for the failed key.
func (c *Cache) Get(t waveform.Template, n int) ([]float64, error) {
	key := cacheKey{name: t.Name, size: n}

	c.mu.RLock()
	table, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return table, nil
	}

	v, err, _ := c.group.Do(key.name+"\x00"+strconv.Itoa(key.size), func() (any, error) {
		// A finished flight may have populated the entry between our
		// read miss and joining the group.
		c.mu.RLock()
		table, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return table, nil
		}

		table, err := c.syn.Render(t, n)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = table
		c.mu.Unlock()

		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]float64), nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset drops all cached tables, for use at catalog teardown/reload.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]float64)
	c.mu.Unlock()
}
