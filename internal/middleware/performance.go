// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package middleware

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/tomtom215/vidrank/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged.
// A cold search with full enrichment routinely takes a few seconds.
const DefaultSlowRequestThreshold = 10 * time.Second

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// EndpointStats contains aggregated statistics for an endpoint
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// PerformanceMonitor keeps a sliding window of recent request latencies.
type PerformanceMonitor struct {
	mu         sync.RWMutex
	metrics    []RequestMetrics
	next       int
	full       bool
	slowAfter  time.Duration
	timeSource func() time.Time
}

// NewPerformanceMonitor creates a monitor retaining the last maxMetrics requests.
func NewPerformanceMonitor(maxMetrics int, slowAfter time.Duration) *PerformanceMonitor {
	if maxMetrics < 1 {
		maxMetrics = 1
	}
	if slowAfter <= 0 {
		slowAfter = DefaultSlowRequestThreshold
	}
	return &PerformanceMonitor{
		metrics:    make([]RequestMetrics, maxMetrics),
		slowAfter:  slowAfter,
		timeSource: time.Now,
	}
}

// RecordRequest adds a request metric, overwriting the oldest when full.
func (pm *PerformanceMonitor) RecordRequest(m RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics[pm.next] = m
	pm.next++
	if pm.next == len(pm.metrics) {
		pm.next = 0
		pm.full = true
	}
}

// snapshot returns retained metrics oldest first. Caller holds the read lock.
func (pm *PerformanceMonitor) snapshot() []RequestMetrics {
	if !pm.full {
		return slices.Clone(pm.metrics[:pm.next])
	}
	out := make([]RequestMetrics, 0, len(pm.metrics))
	out = append(out, pm.metrics[pm.next:]...)
	return append(out, pm.metrics[:pm.next]...)
}

// GetStats returns per-endpoint statistics, busiest endpoint first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	window := pm.snapshot()
	pm.mu.RUnlock()

	durations := make(map[string][]int64)
	errorsBy := make(map[string]int64)
	for _, m := range window {
		key := m.Method + " " + m.Route
		durations[key] = append(durations[key], m.DurationMS)
		if m.StatusCode >= http.StatusInternalServerError {
			errorsBy[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, ds := range durations {
		slices.Sort(ds)

		var sum int64
		for _, d := range ds {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(ds)),
			ErrorCount:   errorsBy[endpoint],
			AvgDuration:  float64(sum) / float64(len(ds)),
			P50Duration:  percentile(ds, 0.50),
			P95Duration:  percentile(ds, 0.95),
			P99Duration:  percentile(ds, 0.99),
			MinDuration:  ds[0],
			MaxDuration:  ds[len(ds)-1],
		})
	}

	slices.SortFunc(stats, func(a, b EndpointStats) int {
		if a.RequestCount != b.RequestCount {
			if a.RequestCount > b.RequestCount {
				return -1
			}
			return 1
		}
		if a.Endpoint < b.Endpoint {
			return -1
		}
		if a.Endpoint > b.Endpoint {
			return 1
		}
		return 0
	})

	return stats
}

// GetRecentMetrics returns the most recent n metrics, oldest first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	window := pm.snapshot()
	pm.mu.RUnlock()

	if n > len(window) {
		n = len(window)
	}
	if n < 0 {
		n = 0
	}
	return window[len(window)-n:]
}

// Middleware records every request and warns on slow ones.
func (pm *PerformanceMonitor) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := pm.timeSource()

		wrapper := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapper, r)

		elapsed := pm.timeSource().Sub(start)
		route := RoutePattern(r)

		pm.RecordRequest(RequestMetrics{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		if elapsed > pm.slowAfter {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Int64("duration_ms", elapsed.Milliseconds()).
				Msg("Slow request detected")
		}
	}
}

// percentile returns the nearest-rank value from a sorted slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}
