package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory holds responses for the lifetime of the process. Within one
// run it absorbs retries; across runs the disk layer takes over.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a response if present and unexpired.
func (c *Memory) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a response under the given TTL.
func (c *Memory) Set(key, value string, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes one entry.
func (c *Memory) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes every entry.
func (c *Memory) Clear() error {
	c.cache.Flush()
	return nil
}
