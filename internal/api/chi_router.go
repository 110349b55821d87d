// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/vidrank/internal/middleware"
)

// RouterOptions toggles optional routes.
type RouterOptions struct {
	EnableSwagger bool
}

// Router builds the HTTP route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	opts          RouterOptions
}

// NewRouter creates a router for handler. A nil mw uses the default
// middleware configuration.
func NewRouter(handler *Handler, mw *ChiMiddleware, opts RouterOptions) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		opts:          opts,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(router.chiMiddleware.RealIP())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// One limiter serves both search paths so clients share a single budget.
	limit := router.chiMiddleware.RateLimit()

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		router.instrument(r, limit)

		r.Get("/search", router.handler.Search)

		r.Get("/cache/stats", router.handler.CacheStats)
		r.Delete("/cache", router.handler.CacheClear)

		r.Get("/stats/queries", router.handler.PopularQueries)
		r.Get("/stats/endpoints", router.handler.EndpointStats)
	})

	// ========================
	// Legacy Search
	// ========================
	r.Group(func(r chi.Router) {
		router.instrument(r, limit)
		r.Get("/search", router.handler.LegacySearch)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	if router.opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}

// instrument applies the per-request stack shared by API routes.
func (router *Router) instrument(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Use(limit)
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	if perf := router.handler.perfMon; perf != nil {
		r.Use(chiMiddleware(perf.Middleware))
	}
	r.Use(chiMiddleware(middleware.Compression))
}
