package matrix

import "container/list"

// lru is a fixed-size cache that evicts the least recently used entry once
// capacity is exceeded. Front of order is the most recent entry.
//
// Not safe for concurrent use: Cache owns it exclusively.
type lru[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(K)

	hits, misses, evictions int64
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// newLRU creates a cache holding at most capacity entries.
// A capacity < 1 is treated as 1.
func newLRU[K comparable, V any](capacity int, onEvict func(K)) *lru[K, V] {
	if capacity < 1 {
		capacity = 1
	}

	return &lru[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		onEvict:  onEvict,
	}
}

// Get returns the cached value and marks it most recently used.
func (c *lru[K, V]) Get(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		c.hits++
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	c.misses++
	var zero V

	return zero, false
}

// Peek returns the cached value without touching recency or stats.
func (c *lru[K, V]) Peek(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V

	return zero, false
}

// Set inserts or replaces key, evicting the least recently used entry if the
// cache grows beyond capacity.
func (c *lru[K, V]) Set(key K, value V) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	for c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// Keys returns the cached keys from most to least recently used.
func (c *lru[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*lruEntry[K, V]).key)
	}

	return keys
}

// Len returns the number of cached entries.
func (c *lru[K, V]) Len() int { return c.order.Len() }

// Purge drops every entry. Stats are kept.
func (c *lru[K, V]) Purge() {
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

func (c *lru[K, V]) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*lruEntry[K, V])
	c.order.Remove(elem)
	delete(c.items, entry.key)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(entry.key)
	}
}
