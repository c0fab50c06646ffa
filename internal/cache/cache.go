package cache

import (
	"sync"
)

// Event describes a full-record replace or a delete.
type Event[K comparable, V any] struct {
	Key     K
	Value   V
	Deleted bool
}

type subscriber[K comparable, V any] struct {
	id uint64
	fn func(Event[K, V])
}

// Cache is a keyed store whose only mutation primitives are whole-record
// replace and delete. Subscribers are called synchronously after the write
// and must not write back into the same cache.
type Cache[K comparable, V any] struct {
	mu     sync.RWMutex
	items  map[K]V
	subsMu sync.RWMutex
	subs   []subscriber[K, V]
	nextID uint64
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]V),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.items[key] = value
	c.mu.Unlock()

	c.notify(Event[K, V]{Key: key, Value: value})
}

// Delete reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	v, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	c.mu.Unlock()

	if ok {
		c.notify(Event[K, V]{Key: key, Value: v, Deleted: true})
	}
	return ok
}

// DeleteFunc removes every entry matching pred and returns the removed keys.
func (c *Cache[K, V]) DeleteFunc(pred func(K, V) bool) []K {
	c.mu.Lock()
	var removed []Event[K, V]
	for k, v := range c.items {
		if pred(k, v) {
			delete(c.items, k)
			removed = append(removed, Event[K, V]{Key: k, Value: v, Deleted: true})
		}
	}
	c.mu.Unlock()

	keys := make([]K, 0, len(removed))
	for _, ev := range removed {
		c.notify(ev)
		keys = append(keys, ev.Key)
	}
	return keys
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Range iterates over a snapshot, so fn may write to the cache.
func (c *Cache[K, V]) Range(fn func(K, V) bool) {
	for k, v := range c.Snapshot() {
		if !fn(k, v) {
			return
		}
	}
}

func (c *Cache[K, V]) Snapshot() map[K]V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[K]V, len(c.items))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}

// Load replaces the whole content without notifying subscribers. It is
// meant for restoring persisted state before anyone subscribes.
func (c *Cache[K, V]) Load(items map[K]V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]V, len(items))
	for k, v := range items {
		c.items[k] = v
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Cache[K, V]) Subscribe(fn func(Event[K, V])) func() {
	c.subsMu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[K, V]{id: id, fn: fn})
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Cache[K, V]) notify(ev Event[K, V]) {
	c.subsMu.RLock()
	subs := make([]subscriber[K, V], len(c.subs))
	copy(subs, c.subs)
	c.subsMu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}
