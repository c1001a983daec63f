package variants

import (
	"sort"
	"sync"
)

// FallbackTable maps "category.variant" keys to literal style strings used
// when the style table cannot answer a lookup. It is safe for concurrent use.
type FallbackTable struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewFallbackTable creates a table seeded with the supplied entries.
func NewFallbackTable(entries map[string]string) *FallbackTable {
	t := &FallbackTable{entries: make(map[string]string, len(entries))}
	for key, value := range entries {
		t.entries[key] = value
	}
	return t
}

// Add inserts or overwrites an entry. The value is stored as given.
func (t *FallbackTable) Add(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[key] = value
}

// Get returns the entry stored under key.
func (t *FallbackTable) Get(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.entries[key]
	return value, ok
}

// Resolve applies the two-tier chain: "category.variant", then
// "category.default", then the empty string. The boolean reports whether an
// entry was found.
func (t *FallbackTable) Resolve(category, variant string) (string, bool) {
	if value, ok := t.Get(fallbackKey(category, variant)); ok {
		return value, true
	}
	if value, ok := t.Get(fallbackKey(category, DefaultVariant)); ok {
		return value, true
	}
	return "", false
}

// Len returns the number of entries.
func (t *FallbackTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Snapshot returns a copy of every entry.
func (t *FallbackTable) Snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copied := make(map[string]string, len(t.entries))
	for key, value := range t.entries {
		copied[key] = value
	}
	return copied
}

// Keys returns the entry keys in lexical order.
func (t *FallbackTable) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func fallbackKey(category, variant string) string {
	if variant == "" {
		variant = DefaultVariant
	}
	return category + "." + variant
}

// DefaultFallbacks returns the built-in fallback entries installed in every
// Resolver before caller-supplied overrides.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		"button.default":   "inline-flex items-center justify-center rounded-md px-4 py-2 text-sm font-medium",
		"button.primary":   "inline-flex items-center justify-center rounded-md px-4 py-2 text-sm font-medium bg-blue-600 text-white",
		"button.secondary": "inline-flex items-center justify-center rounded-md px-4 py-2 text-sm font-medium bg-gray-100 text-gray-900",
		"card.default":     "rounded-lg border bg-white p-6 shadow-sm",
		"badge.default":    "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold",
		"alert.default":    "relative w-full rounded-lg border p-4",
		"input.default":    "flex h-10 w-full rounded-md border px-3 py-2 text-sm",
		"modal.default":    "fixed inset-0 z-50 flex items-center justify-center",
		"text.default":     "text-base text-gray-900",
	}
}
