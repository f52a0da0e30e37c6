package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

type shard struct {
	mu   sync.RWMutex
	data map[string]expiring
}

// ShardedCache spreads keys over independently locked shards so readers of
// different orders do not contend on one mutex.
type ShardedCache struct {
	shards []shard
	ttl    time.Duration
	now    func() time.Time
}

type ShardedOption func(*ShardedCache)

// WithShards sets the shard count, rounded up to a power of two.
func WithShards(n int) ShardedOption {
	return func(c *ShardedCache) {
		if n <= 0 {
			n = 16
		}
		size := 1
		for size < n {
			size <<= 1
		}
		c.shards = make([]shard, size)
		for i := range c.shards {
			c.shards[i] = shard{data: make(map[string]expiring)}
		}
	}
}

func WithShardTTL(ttl time.Duration) ShardedOption { return func(c *ShardedCache) { c.ttl = ttl } }

func WithShardClock(now func() time.Time) ShardedOption {
	return func(c *ShardedCache) { c.now = now }
}

func NewShardedCache(opts ...ShardedOption) *ShardedCache {
	c := &ShardedCache{now: time.Now}
	WithShards(16)(c)
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *ShardedCache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	idx := int(h.Sum32() & uint32(len(c.shards)-1))
	return &c.shards[idx]
}

func (c *ShardedCache) Put(key string, v any) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	s.data[key] = e
}

func (c *ShardedCache) Get(key string) (any, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.E == e.E {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.V, true
}

func (c *ShardedCache) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *ShardedCache) Purge() int {
	now := c.now()
	removed := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for k, e := range s.data {
			if e.expired(now) {
				delete(s.data, k)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.data)
		s.mu.RUnlock()
	}
	return n
}
