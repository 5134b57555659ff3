package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// defining cacheEntry and Cache struct
type cacheEntry struct {
	key  string
	data []byte
}

// Cache is a byte-bounded response cache. Entries are prepended on Add and
// evicted from the back of the list, so eviction order follows insertion
// order: Get does not promote an entry. Many readers may run concurrently;
// Add excludes them for the duration of the insert and any evictions.
type Cache struct {
	mu        sync.RWMutex
	maxSize   int        // total bytes across all entries
	maxObject int        // largest single entry accepted
	size      int        // current total bytes
	ll        *list.List // DLL, most recently inserted at front
	index     map[string]*list.Element

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries int
	Bytes   int
	Hits    uint64
	Misses  uint64
}

func NewCache(maxSize, maxObject int) *Cache {
	return &Cache{
		maxSize:   maxSize,
		maxObject: maxObject,
		ll:        list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get returns the cached bytes for key, or false on a miss. The returned
// slice is owned by the cache; callers must not modify it.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if elem, ok := c.index[key]; ok {
		c.hits.Add(1)
		return elem.Value.(*cacheEntry).data, true
	}
	c.misses.Add(1)
	return nil, false
}

// Add stores data under key. Bodies larger than the per-object bound are
// ignored. Entries are evicted from the back until the new body fits within
// the total bound. An existing entry for key is not replaced; the index is
// repointed at the new entry and the old one ages out through eviction.
func (c *Cache) Add(key string, data []byte) {
	if len(data) > c.maxObject {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict oldest inserts until the new entry fits
	for c.size+len(data) > c.maxSize && c.ll.Len() > 0 {
		c.evict()
	}

	// Add new entry to front. The cache owns its copy of the body.
	owned := make([]byte, len(data))
	copy(owned, data)
	entry := &cacheEntry{key: key, data: owned}
	elem := c.ll.PushFront(entry)
	c.index[key] = elem
	c.size += len(owned)
}

func (c *Cache) evict() {
	// Remove from back of list (oldest insert)
	elem := c.ll.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*cacheEntry)
	c.size -= len(entry.data)
	// A duplicate insert may have repointed the index at a newer entry;
	// only drop the mapping when it still refers to the victim.
	if c.index[entry.key] == elem {
		delete(c.index, entry.key)
	}
	c.ll.Remove(elem)
}

// Len returns the number of entries, counting duplicates separately.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ll.Len()
}

// Size returns the total bytes held.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// GetStats returns a snapshot of the counters.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Entries: c.ll.Len(),
		Bytes:   c.size,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
