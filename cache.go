package folio

import (
	"sync"

	"github.com/armon/go-radix"

	"github.com/gomantics/folio/formats"
)

// Cache remembers decode results per image path. A nil map is a valid entry
// meaning "no metadata".
type Cache interface {
	Get(path string) (formats.Map, bool)
	Set(path string, m formats.Map)
	// WalkPrefix calls fn for every entry whose path starts with prefix until
	// fn returns true.
	WalkPrefix(prefix string, fn func(path string, m formats.Map) bool)
	Len() int
}

// MemoryCache is a Cache backed by a radix tree so results can be listed by
// folder. Entries are never evicted.
type MemoryCache struct {
	mu   sync.RWMutex
	tree *radix.Tree
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{tree: radix.New()}
}

// Get returns the result stored for path. The boolean is false when path
// has never been stored.
func (c *MemoryCache) Get(path string) (formats.Map, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.tree.Get(path)
	if !ok {
		return nil, false
	}
	return v.(formats.Map), true
}

// Set stores m for path, replacing any earlier result.
func (c *MemoryCache) Set(path string, m formats.Map) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree.Insert(path, m)
}

// WalkPrefix visits entries under prefix in lexical order.
func (c *MemoryCache) WalkPrefix(prefix string, fn func(path string, m formats.Map) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.tree.WalkPrefix(prefix, func(key string, v interface{}) bool {
		return fn(key, v.(formats.Map))
	})
}

// Len returns the number of cached paths.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tree.Len()
}
