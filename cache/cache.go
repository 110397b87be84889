// ABOUTME: Bounded TTL result cache with insertion-order eviction
// ABOUTME: Reads never refresh an entry's position or its expiry clock
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Stats is the shape served by the cache-stats endpoint.
type Stats struct {
	Size       int `json:"size"`
	MaxSize    int `json:"maxSize"`
	TTLMinutes int `json:"ttlMinutes"`
}

// ResultCache stores lookup results for a fixed TTL, capped at maxSize
// entries. When full, the oldest-inserted entry is evicted, not the least
// recently used one. Expired entries are dropped lazily on read.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[string]entry
	order   []string
	now     func() time.Time
}

func New(ttl time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock is New with an injectable clock, used by tests.
func NewWithClock(ttl time.Duration, maxSize int, now func() time.Time) *ResultCache {
	c := New(ttl, maxSize)
	c.now = now
	return c
}

// Get returns the cached value for key, dropping it if the TTL has elapsed.
func (c *ResultCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key. An existing key is updated in place and keeps
// its original insertion position.
func (c *ResultCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry{value: value, storedAt: c.now()}
		return
	}

	// A key lazily dropped by Get may still hold its old order slot; remove
	// it so the re-insert is ordered by its new insertion time, not the
	// stale one.
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	// Evict oldest-inserted entries to make room. Keys already dropped
	// lazily by Get still sit in the order slice and are skipped.
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.order = append(c.order, key)
}

func (c *ResultCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Size:       len(c.entries),
		MaxSize:    c.maxSize,
		TTLMinutes: int(c.ttl.Minutes()),
	}
}

func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.order = nil
}

// LookupKey builds the cache key for a definition lookup. Every setting that
// changes the projected result participates, so distinct views never collide.
func LookupKey(source, text, scope string, exampleCount int, targetLanguage string) string {
	return strings.Join([]string{source, text, scope, fmt.Sprintf("%d", exampleCount), targetLanguage}, "|")
}

// SentenceKey builds the cache key for a sentence translation.
func SentenceKey(sentence, targetLanguage string) string {
	return "sentence|" + sentence + "|" + targetLanguage
}

// DictionaryKey builds the cache key for a raw dictionary-endpoint lookup.
func DictionaryKey(locale, entry string) string {
	return "dictionary|" + locale + "|" + entry
}

// VerbsKey builds the cache key for a verb-conjugation fetch.
func VerbsKey(entry string) string {
	return "verbs|" + entry
}
