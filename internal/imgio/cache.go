package imgio

import (
	"image"
	"sync"
)

// Cache is a concurrency-safe decode cache keyed by path. Errors are cached
// alongside images so a bad path fails identically on every lookup.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Load decodes and caches the image at path. Concurrent loads of the same
// path may decode more than once; the first completed entry wins.
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	// Fast path: read lock
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.img, e.err
	}
	c.mu.RUnlock()

	// Slow path: decode from disk
	img, err := Decode(path)

	// Write lock with double-check
	c.mu.Lock()
	if e, ok := c.items[path]; ok {
		c.mu.Unlock()
		return e.img, e.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	return img, err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
