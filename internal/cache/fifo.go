// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package cache

import "sync"

// DefaultCapacity is the entry bound used when none is configured.
const DefaultCapacity = 100

type fifoEntry[K comparable, V any] struct {
	key   K
	value V
	prev  *fifoEntry[K, V]
	next  *fifoEntry[K, V]
}

// FIFOCache is a bounded, thread-safe map that evicts the oldest inserted
// entry when a new key would exceed capacity.
//
// Reads never change eviction order. Putting an existing key replaces its
// value in place and keeps its original insertion position.
//
// The list runs from head.next (oldest) to tail.prev (newest); head and tail
// are sentinels so insertion and removal need no nil checks.
type FIFOCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*fifoEntry[K, V]
	head     *fifoEntry[K, V]
	tail     *fifoEntry[K, V]

	hits      int64
	misses    int64
	evictions int64

	onEvict func(key K)
}

// Option configures a FIFOCache.
type Option[K comparable, V any] func(*FIFOCache[K, V])

// WithEvictCallback registers fn to run after an entry is evicted for
// capacity. fn is called with the cache lock held and must not call back
// into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K)) Option[K, V] {
	return func(c *FIFOCache[K, V]) {
		c.onEvict = fn
	}
}

// NewFIFO creates a cache holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func NewFIFO[K comparable, V any](capacity int, opts ...Option[K, V]) *FIFOCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &FIFOCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*fifoEntry[K, V], capacity),
		head:     &fifoEntry[K, V]{},
		tail:     &fifoEntry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key.
func (c *FIFOCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.hits++
		return e.value, true
	}
	c.misses++
	var zero V
	return zero, false
}

// Put stores value under key. A new key evicts the oldest entry first when
// the cache is full. It reports whether an eviction happened.
func (c *FIFOCache[K, V]) Put(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		return false
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
		evicted = true
	}

	e := &fifoEntry[K, V]{key: key, value: value}
	e.prev = c.tail.prev
	e.next = c.tail
	c.tail.prev.next = e
	c.tail.prev = e
	c.items[key] = e
	return evicted
}

// Keys returns the keys from oldest to newest.
func (c *FIFOCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Len returns the number of entries.
func (c *FIFOCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the entry bound.
func (c *FIFOCache[K, V]) Capacity() int {
	return c.capacity
}

// Clear removes every entry. Counters are kept.
func (c *FIFOCache[K, V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.items)
	c.items = make(map[K]*fifoEntry[K, V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	return n
}

// Stats returns a snapshot of the counters.
func (c *FIFOCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   len(c.items),
		Capacity:  c.capacity,
	}
}

// must be called with mu held
func (c *FIFOCache[K, V]) evictOldest() {
	oldest := c.head.next
	if oldest == c.tail {
		return
	}
	c.unlink(oldest)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(oldest.key)
	}
}

// must be called with mu held
func (c *FIFOCache[K, V]) unlink(e *fifoEntry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	delete(c.items, e.key)
}
