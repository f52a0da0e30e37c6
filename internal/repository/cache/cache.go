package cache

import (
	"sync"
	"time"
)

// KV is the storage behind the order cache. Expired entries are dropped
// lazily on Get and in bulk by Purge.
type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
	Purge() int
	Len() int
}

type Cache struct {
	data map[string]expiring
	mu   sync.RWMutex

	ttl time.Duration
	now func() time.Time
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option      { return func(c *Cache) { c.ttl = ttl } }
func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]expiring),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type expiring struct {
	V any
	E time.Time
}

func (e expiring) expired(now time.Time) bool {
	return !e.E.IsZero() && now.After(e.E)
}

func (c *Cache) Put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	c.data[key] = e
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.E == e.E {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.V, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// Purge drops every expired entry and reports how many were removed.
func (c *Cache) Purge() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
