// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package cache

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func newTestStore(window time.Duration, buckets, maxKeys int) (*WindowStore, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewWindowStore(window, buckets, maxKeys)
	s.now = clk.now
	return s, clk
}

func TestWindowStoreCountsWithinWindow(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(time.Hour, 6, 10)

	s.Add("cats", 1)
	clk.t = clk.t.Add(20 * time.Minute)
	s.Add("cats", 2)

	if got := s.Count("cats"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	// First increment falls out once its bucket leaves the window.
	clk.t = clk.t.Add(50 * time.Minute)
	if got := s.Count("cats"); got != 2 {
		t.Errorf("Count after partial expiry = %d, want 2", got)
	}

	clk.t = clk.t.Add(2 * time.Hour)
	if got := s.Count("cats"); got != 0 {
		t.Errorf("Count after full expiry = %d, want 0", got)
	}
	if got := s.Count("dogs"); got != 0 {
		t.Errorf("Count(unknown) = %d", got)
	}
}

func TestWindowStoreTop(t *testing.T) {
	t.Parallel()

	s, clk := newTestStore(time.Hour, 4, 10)
	s.Add("b", 3)
	s.Add("a", 3)
	s.Add("c", 5)
	s.Add("d", 1)

	top := s.Top(3)
	want := []KeyCount{{"c", 5}, {"a", 3}, {"b", 3}}
	if len(top) != len(want) {
		t.Fatalf("Top(3) = %v", top)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("Top[%d] = %v, want %v", i, top[i], want[i])
		}
	}

	clk.t = clk.t.Add(3 * time.Hour)
	if top := s.Top(0); len(top) != 0 {
		t.Errorf("Top after expiry = %v", top)
	}
	if s.Len() != 0 {
		t.Errorf("expired keys not pruned, Len = %d", s.Len())
	}
}

func TestWindowStoreEvictsSmallest(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(time.Hour, 4, 2)
	s.Add("popular", 10)
	s.Add("rare", 1)
	s.Add("new", 1)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Count("rare") != 0 {
		t.Error("smallest key should have been evicted")
	}
	if s.Count("popular") != 10 {
		t.Error("largest key should survive")
	}
}
