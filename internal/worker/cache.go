package worker

// resultCache memoizes expensive routine results by string fingerprint.
// There is no TTL and no eviction: entries live until an explicit
// CLEAR_CACHE. A bounded LRU would be reasonable hardening if this ever
// outgrows the portfolio, but the unbounded behavior is kept deliberately.
//
// The cache is confined to the worker goroutine, so no locking is needed.
type resultCache struct {
	entries map[string]any
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]any)}
}

func (c *resultCache) Get(key string) (any, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *resultCache) Set(key string, value any) {
	c.entries[key] = value
}

func (c *resultCache) Clear() {
	c.entries = make(map[string]any)
}

func (c *resultCache) Size() int {
	return len(c.entries)
}
