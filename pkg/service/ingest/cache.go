package ingest

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a successful ingestion result is reused.
const DefaultCacheTTL = time.Hour

// resultCache memoizes the last successful ingestion result. It is keyed
// process-globally, not per source: repeated runs within the TTL skip the
// source read and duplicate checks entirely.
type resultCache struct {
	mu        sync.Mutex
	result    *Result
	expiresAt time.Time

	ttl time.Duration
	now func() time.Time
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	if now == nil {
		now = time.Now
	}
	return &resultCache{
		ttl: ttl,
		now: now,
	}
}

func (c *resultCache) get() (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result == nil || c.now().After(c.expiresAt) {
		c.result = nil
		return nil, false
	}

	cached := *c.result
	return &cached, true
}

func (c *resultCache) set(result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := *result
	c.result = &cached
	c.expiresAt = c.now().Add(c.ttl)
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = nil
	c.expiresAt = time.Time{}
}
