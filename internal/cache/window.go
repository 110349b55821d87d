// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package cache

import (
	"sort"
	"sync"
	"time"
)

// windowCounter splits a window into equal buckets held in a ring. Counting
// sums the buckets that are still inside the window. Not safe for concurrent
// use on its own; WindowStore serialises access.
type windowCounter struct {
	buckets    []int64
	bucketSize time.Duration
	current    int
	last       time.Time
}

func newWindowCounter(window time.Duration, numBuckets int, now time.Time) *windowCounter {
	return &windowCounter{
		buckets:    make([]int64, numBuckets),
		bucketSize: window / time.Duration(numBuckets),
		last:       now,
	}
}

func (w *windowCounter) add(now time.Time, delta int64) {
	w.advance(now)
	w.buckets[w.current] += delta
}

func (w *windowCounter) count(now time.Time) int64 {
	w.advance(now)
	var total int64
	for _, n := range w.buckets {
		total += n
	}
	return total
}

func (w *windowCounter) advance(now time.Time) {
	steps := int(now.Sub(w.last) / w.bucketSize)
	if steps <= 0 {
		return
	}
	if steps >= len(w.buckets) {
		clear(w.buckets)
		w.current = 0
	} else {
		for i := 0; i < steps; i++ {
			w.current = (w.current + 1) % len(w.buckets)
			w.buckets[w.current] = 0
		}
	}
	// Keep last aligned to bucket boundaries so partial steps are not lost.
	w.last = w.last.Add(time.Duration(steps) * w.bucketSize)
}

// KeyCount is one row of a WindowStore ranking.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// WindowStore tracks a sliding-window counter per key. When maxKeys is
// reached, the key with the smallest current count is dropped to make room.
type WindowStore struct {
	mu         sync.Mutex
	counters   map[string]*windowCounter
	window     time.Duration
	numBuckets int
	maxKeys    int
	now        func() time.Time
}

// NewWindowStore creates a store. Non-positive arguments fall back to a
// one hour window, 12 buckets and 1000 keys.
func NewWindowStore(window time.Duration, numBuckets, maxKeys int) *WindowStore {
	if window <= 0 {
		window = time.Hour
	}
	if numBuckets <= 0 {
		numBuckets = 12
	}
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	return &WindowStore{
		counters:   make(map[string]*windowCounter),
		window:     window,
		numBuckets: numBuckets,
		maxKeys:    maxKeys,
		now:        time.Now,
	}
}

// Add increments key by delta.
func (s *WindowStore) Add(key string, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[key]
	if !ok {
		if len(s.counters) >= s.maxKeys {
			s.evictSmallest(now)
		}
		c = newWindowCounter(s.window, s.numBuckets, now)
		s.counters[key] = c
	}
	c.add(now, delta)
}

// Count returns key's total inside the window.
func (s *WindowStore) Count(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok {
		return 0
	}
	return c.count(s.now())
}

// Len returns the number of tracked keys.
func (s *WindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}

// Top returns up to n keys with a non-zero count, highest first. Ties are
// ordered by key. Keys whose window has emptied are pruned.
func (s *WindowStore) Top(n int) []KeyCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rows := make([]KeyCount, 0, len(s.counters))
	for k, c := range s.counters {
		total := c.count(now)
		if total == 0 {
			delete(s.counters, k)
			continue
		}
		rows = append(rows, KeyCount{Key: k, Count: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// must be called with mu held
func (s *WindowStore) evictSmallest(now time.Time) {
	var (
		victim string
		lowest int64 = -1
	)
	for k, c := range s.counters {
		total := c.count(now)
		if lowest < 0 || total < lowest || (total == lowest && k < victim) {
			victim, lowest = k, total
		}
	}
	delete(s.counters, victim)
}
