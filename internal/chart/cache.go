package chart

import (
	"sync"
	"time"
)

// Cache holds the most recently built option for concurrent readers.
type Cache struct {
	mu      sync.RWMutex
	opt     *Option
	builtAt time.Time
}

// Set replaces the cached option.
func (c *Cache) Set(opt *Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opt = opt
	c.builtAt = time.Now()
}

// Get returns the cached option and when it was built. ok is false until the
// first Set.
func (c *Cache) Get() (opt *Option, builtAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opt, c.builtAt, c.opt != nil
}
