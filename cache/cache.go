// Package cache provides a small thread-safe LRU cache.
//
// It backs on-demand block value lookups below the levels that the
// precomputed aggregate caches store: fine-grained blocks are cheap to
// recompute but views tend to request the same ones repeatedly while the
// viewport is stable.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity is the maximum entry count used when New is given a
// non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU cache. When the cache is full, inserting a
// new entry evicts a batch of least recently used entries so insertions
// stay cheap on average.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	lru      *list.List // front = most recently used
	capacity int
}

// entry is the value stored in each LRU list element.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	Len      int
	Capacity int
}

// New creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*list.Element),
		lru:      list.New(),
		capacity: capacity,
	}
}

// Get returns the cached value for key, marking it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Set stores a value for key, evicting least recently used entries if the
// cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, calling create to compute
// and store it on a miss. create runs under the cache lock, so it must
// not call back into the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		return el.Value.(*entry[K, V]).value
	}

	value := create()
	c.set(key, value)
	return value
}

// set inserts or updates an entry. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.lru.MoveToFront(el)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evict()
	}

	el := c.lru.PushFront(&entry[K, V]{key: key, value: value})
	c.entries[key] = el
}

// evict removes a batch (25% of capacity, at least one) of least recently
// used entries. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	batch := c.capacity / 4
	if batch < 1 {
		batch = 1
	}
	for range batch {
		back := c.lru.Back()
		if back == nil {
			return
		}
		c.lru.Remove(back)
		delete(c.entries, back.Value.(*entry[K, V]).key)
	}
}

// Delete removes key from the cache, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(el)
	delete(c.entries, key)
	return true
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Capacity: c.capacity}
}
