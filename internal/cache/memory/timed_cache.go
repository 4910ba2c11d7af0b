package memory

import (
	"sync"
	"time"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
)

var _ ports.Cache = (*TimedCache)(nil)

// DefaultTTL is the freshness window for catalog data.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// TimedCache is a key/value map with per-entry expiration. Eviction is
// lazy: a stale entry is removed by the Get that discovers it, there is
// no background sweep. A ttl <= 0 disables expiration.
type TimedCache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewTimedCache builds an empty cache. Pass DefaultTTL unless a test
// or operator override says otherwise.
func NewTimedCache(ttl time.Duration) *TimedCache {
	return &TimedCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns (value, true) on a fresh hit. An entry older than the
// TTL behaves as a miss and is deleted as a side effect.
func (c *TimedCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if c.isExpired(ent) {
		delete(c.entries, key)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(c.entries)))
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.value, true
}

// Set stores value under key unconditionally, stamping the current time.
func (c *TimedCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
	metrics.CacheSize.Set(float64(len(c.entries)))
}

// Clear drops all entries.
func (c *TimedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	metrics.CacheSize.Set(0)
}

// Len reports the current entry count, stale entries included.
func (c *TimedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *TimedCache) isExpired(ent entry) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(ent.storedAt) > c.ttl
}
