package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// Cache is an in-process TTL store for serialized response bodies, keyed by
// normalized request path+query. Constructed once at startup and injected;
// guarded by a RWMutex because chi serves requests in parallel.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock is used by tests to control expiry
func NewWithClock(now func() time.Time) *Cache {
	c := New()
	c.now = now
	return c
}

// Get returns the cached body for key, or false when absent or expired.
// Expired entries are dropped lazily on read.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return e.body, true
}

// Set stores body under key, overwriting any existing entry. The entry
// expires ttl seconds after store time.
func (c *Cache) Set(key string, body []byte, ttlSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		body:      body,
		expiresAt: c.now().Add(time.Duration(ttlSeconds) * time.Second),
	}
}

// DeletePattern removes every entry whose key contains the substring.
// Linear scan over all keys; fine at the target cache size.
func (c *Cache) DeletePattern(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Flush clears every entry
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
