// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/middleware"
	"github.com/tomtom215/vidrank/internal/models"
)

// Searcher runs one search. pipeline.Service implements it.
type Searcher interface {
	Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error)
}

// CacheAdmin exposes result cache maintenance.
type CacheAdmin interface {
	Stats() cache.Stats
	Keys() []cache.SearchKey
	Clear() int
}

// QueryStats reports the most searched queries.
type QueryStats interface {
	Top(n int) []cache.KeyCount
}

// CircuitStates reports provider circuit breaker states by operation.
type CircuitStates interface {
	States() map[string]string
}

// HandlerDeps are the collaborators of Handler. Only Search is required.
type HandlerDeps struct {
	Search   Searcher
	Cache    CacheAdmin
	Queries  QueryStats
	Circuits CircuitStates
	Perf     *middleware.PerformanceMonitor

	// Ready reports whether background services are running. Nil means ready.
	Ready func() bool

	Version string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_search.go: search endpoints
//   - handlers_cache.go: cache maintenance
//   - handlers_stats.go: popular queries and endpoint latency
//   - handlers_health.go: health probes
type Handler struct {
	search    Searcher
	cache     CacheAdmin
	queries   QueryStats
	circuits  CircuitStates
	perfMon   *middleware.PerformanceMonitor
	ready     func() bool
	version   string
	startTime time.Time
	logger    zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(deps HandlerDeps) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		search:    deps.Search,
		cache:     deps.Cache,
		queries:   deps.Queries,
		circuits:  deps.Circuits,
		perfMon:   deps.Perf,
		ready:     deps.Ready,
		version:   version,
		startTime: time.Now(),
		logger:    logging.WithComponent("api"),
	}
}
