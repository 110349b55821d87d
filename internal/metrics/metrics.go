// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto at
// package init, so callers simply import the package and use the Record
// helpers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Search pipeline
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_search_requests_total",
			Help: "Total number of search pipeline runs by outcome",
		},
		[]string{"outcome"}, // "ok", "cached", "invalid", "upstream_unavailable", "upstream_unparseable", "error"
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidrank_search_duration_seconds",
			Help:    "Duration of search pipeline runs in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"cached"},
	)

	SearchResultItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vidrank_search_result_items",
			Help:    "Number of items returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	CandidatesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_candidates_dropped_total",
			Help: "Candidates removed before ranking, by reason",
		},
		[]string{"reason"}, // "malformed", "irrelevant", "no_views", "detail_failed"
	)

	// Enrichment
	EnrichmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vidrank_enrichment_duration_seconds",
			Help:    "Duration of one candidate's enrichment in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	EnrichmentInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidrank_enrichment_in_flight",
			Help: "Candidates currently being enriched",
		},
	)

	SubFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_subfetch_total",
			Help: "Per-candidate sub-fetches by operation and result",
		},
		[]string{"op", "result"}, // result: "ok" or a default reason
	)

	// Result cache
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidrank_cache_hits_total",
			Help: "Total number of result cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidrank_cache_misses_total",
			Help: "Total number of result cache misses",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidrank_cache_evictions_total",
			Help: "Total number of result cache evictions",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidrank_cache_entries",
			Help: "Current number of cached search results",
		},
	)

	// Provider
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_provider_requests_total",
			Help: "Outbound provider requests by operation and HTTP status",
		},
		[]string{"op", "status"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidrank_provider_request_duration_seconds",
			Help:    "Outbound provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	ProviderRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_provider_rate_limited_total",
			Help: "HTTP 429 responses received from the provider",
		},
		[]string{"op"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// HTTP API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_events_published_total",
			Help: "Events published on the in-process bus",
		},
		[]string{"topic", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidrank_events_consumed_total",
			Help: "Events consumed from the in-process bus",
		},
		[]string{"topic", "result"},
	)
)

// RecordSearch records one pipeline run.
func RecordSearch(outcome string, cached bool, items int, duration time.Duration) {
	SearchRequests.WithLabelValues(outcome).Inc()
	label := "false"
	if cached {
		label = "true"
	}
	SearchDuration.WithLabelValues(label).Observe(duration.Seconds())
	if outcome == "ok" || outcome == "cached" {
		SearchResultItems.Observe(float64(items))
	}
}

// RecordDropped counts candidates removed for reason.
func RecordDropped(reason string, n int) {
	if n > 0 {
		CandidatesDropped.WithLabelValues(reason).Add(float64(n))
	}
}

// RecordSubFetch records a sub-fetch result. An empty reason means success.
func RecordSubFetch(op, reason string) {
	if reason == "" {
		reason = "ok"
	}
	SubFetchTotal.WithLabelValues(op, reason).Inc()
}

// RecordEnrichment observes one enrichment duration.
func RecordEnrichment(duration time.Duration) {
	EnrichmentDuration.Observe(duration.Seconds())
}

// TrackEnrichment adjusts the in-flight enrichment gauge.
func TrackEnrichment(inc bool) {
	if inc {
		EnrichmentInFlight.Inc()
	} else {
		EnrichmentInFlight.Dec()
	}
}

// RecordCacheLookup counts a hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordCacheEviction counts one FIFO eviction.
func RecordCacheEviction() {
	CacheEvictions.Inc()
}

// SetCacheEntries sets the current cache size.
func SetCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}

// RecordProviderRequest records one outbound HTTP exchange.
func RecordProviderRequest(op, status string, duration time.Duration) {
	ProviderRequests.WithLabelValues(op, status).Inc()
	ProviderRequestDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
