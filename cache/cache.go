// Package cache implements the ResultCache (spec §4.9): a TTL- and
// capacity-bounded map keyed by (query, options), hashed the way the
// teacher's fulhash package hashes payloads.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/fulmenhq/meilirank/model"
	"github.com/zeebo/xxh3"
)

// Entry is a cached reply plus its insertion time.
type Entry struct {
	Reply    model.Reply
	CachedAt time.Time
}

// Cache is the bounded ResultCache. The zero value is not usable; use New.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]Entry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// Stats is the cache_stats() Admin API shape (spec §6).
type Stats struct {
	Size int
	Max  int
	TTL  time.Duration
}

// New constructs a Cache with the given ttl and capacity (cap is
// advisory, spec §4.9). A zero ttl or capacity falls back to the
// documented defaults of 3600s / 1000 entries.
func New(ttl time.Duration, capacity int) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if capacity <= 0 {
		capacity = 1000
	}
	return &Cache{
		entries:  make(map[string]Entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Key computes the cache key for a query string and its options: xxh3-128
// of query ⊕ canonical JSON options (spec §4.9).
func Key(query string, opts model.Options) string {
	canonical, _ := json.Marshal(struct {
		Limit       int         `json:"limit"`
		MaxDistance int         `json:"max_distance"`
		Filters     interface{} `json:"filters"`
	}{opts.Limit, opts.MaxDistance, opts.Filters})

	payload := append([]byte(query), canonical...)
	sum := xxh3.Hash128(payload)
	b := sum.Bytes()
	return hex.EncodeToString(b[:])
}

// Get returns the cached reply for key, if present and not expired.
func (c *Cache) Get(key string) (model.Reply, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return model.Reply{}, false
	}
	if c.now().Sub(entry.CachedAt) >= c.ttl {
		return model.Reply{}, false
	}
	reply := entry.Reply
	reply.FromCache = true
	return reply, true
}

// Set inserts reply under key, sweeping expired entries first if the cache
// is at capacity (spec §4.9: "advisory, no strict LRU").
func (c *Cache) Set(key string, reply model.Reply) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.sweepExpiredLocked()
	}

	c.entries[key] = Entry{Reply: reply, CachedAt: c.now()}
}

func (c *Cache) sweepExpiredLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.CachedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// Clear empties the cache (engine.ClearCache).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// Stats reports the current size, capacity, and ttl (engine.CacheStats).
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), Max: c.capacity, TTL: c.ttl}
}
