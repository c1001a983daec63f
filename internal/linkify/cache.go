package linkify

import "sync"

// DefaultCacheLimit bounds a Cache created with a non-positive limit.
const DefaultCacheLimit = 256

// Cache memoizes linkified output per input text.
type Cache struct {
	mu      sync.RWMutex
	limit   int
	entries map[string][]Segment
}

// NewCache creates a cache holding at most limit texts. Once full, the cache
// is emptied before the next insert.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{
		limit:   limit,
		entries: make(map[string][]Segment),
	}
}

// Get returns a copy of the cached segments for text.
func (c *Cache) Get(text string) ([]Segment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	segments, ok := c.entries[text]
	if !ok {
		return nil, false
	}
	return append([]Segment(nil), segments...), true
}

// Set stores a copy of segments for text.
func (c *Cache) Set(text string, segments []Segment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[text]; !exists && len(c.entries) >= c.limit {
		c.entries = make(map[string][]Segment)
	}
	c.entries[text] = append([]Segment(nil), segments...)
}

// Invalidate removes the cached entry for text.
func (c *Cache) Invalidate(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, text)
}

// InvalidateAll removes every cached entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]Segment)
}

// Len returns the number of cached texts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
