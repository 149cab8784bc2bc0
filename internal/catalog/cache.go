package catalog

import (
	"sync"
	"time"
)

// TokenCache is a key→value store with per-entry expiry. It is injected into
// the Client so tests can control expiry explicitly. Refreshes are not
// single-flighted: concurrent callers on a miss may each fetch a token, which
// is tolerated.
type TokenCache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is the default process-wide TokenCache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: map[string]cacheEntry{},
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return entry.value, true
}

func (c *MemoryCache) Set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
}
