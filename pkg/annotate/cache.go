package annotate

import "sync"

// Cache memoizes annotations by raw token surface string. It lives for the
// process and is shared across pipeline runs; nothing is ever evicted here.
// Safe for concurrent use. Concurrent misses on the same surface may compute
// it twice; the results are identical and the last write wins, so the
// at-most-once cost is a performance property, not a correctness one.
type Cache struct {
	mu     sync.RWMutex
	tokens map[string]Token
}

// NewCache returns an empty annotation cache.
func NewCache() *Cache {
	return &Cache{tokens: make(map[string]Token)}
}

// Get returns the cached token for surface, if any.
func (c *Cache) Get(surface string) (Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tok, ok := c.tokens[surface]
	return tok, ok
}

// Put stores tok under surface.
func (c *Cache) Put(surface string, tok Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[surface] = tok
}

// Len returns the number of cached surfaces.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tokens)
}
