package cache

import "time"

// Layered combines the memory and disk stores: reads hit memory first
// and promote disk hits, writes land in both.
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered creates the standard two-level response cache.
func NewLayered(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *Layered {
	return &Layered{
		memory: NewMemory(memoryTTL, 10*time.Minute),
		disk:   NewDisk(diskDir, diskTTL),
	}
}

// Get checks memory, then disk. A disk hit is promoted to memory under
// the memory default TTL.
func (c *Layered) Get(key string) (string, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0)
		return val, true
	}

	return "", false
}

// Set stores the response in both layers.
func (c *Layered) Set(key, value string, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes the entry from both layers.
func (c *Layered) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *Layered) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
