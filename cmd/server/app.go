// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/vidrank/internal/api"
	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/config"
	"github.com/tomtom215/vidrank/internal/events"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/middleware"
	"github.com/tomtom215/vidrank/internal/models"
	"github.com/tomtom215/vidrank/internal/pipeline"
	"github.com/tomtom215/vidrank/internal/sentiment"
	"github.com/tomtom215/vidrank/internal/supervisor"
	"github.com/tomtom215/vidrank/internal/supervisor/services"
	"github.com/tomtom215/vidrank/internal/youtube"
)

// perfWindow is the number of recent requests kept for endpoint statistics.
const perfWindow = 1000

// application holds the wired components of one server process.
type application struct {
	cfg     *config.Config
	handler http.Handler
	search  *pipeline.Service
	cache   *resultCache
	tracker *events.QueryTracker
	httpSvc *services.HTTPServerService
	tree    *supervisor.SupervisorTree
}

// provider is what the pipeline and health endpoint need from the YouTube
// client, with or without circuit breakers.
type provider interface {
	pipeline.SourceProvider
	pipeline.CommentProvider
	pipeline.TranscriptProvider
}

// newApplication wires every component from cfg. Nothing is started.
func newApplication(cfg *config.Config) (*application, error) {
	app := &application{cfg: cfg}

	client := youtube.NewClient(youtubeConfig(cfg.YouTube))
	var yt provider = client
	var circuits api.CircuitStates
	if cfg.YouTube.CircuitBreaker.Enabled {
		cbc := youtube.NewCircuitBreakerClient(client, breakerConfig(cfg.YouTube.CircuitBreaker))
		yt = cbc
		circuits = cbc
	}

	deps := pipeline.Deps{
		Source:    yt,
		Comments:  yt,
		Sentiment: sentiment.New(),
	}
	if cfg.YouTube.TranscriptsEnabled {
		deps.Transcripts = yt
	}

	hdeps := api.HandlerDeps{
		Circuits: circuits,
		Perf:     middleware.NewPerformanceMonitor(perfWindow, middleware.DefaultSlowRequestThreshold),
		Ready:    app.ready,
		Version:  version,
	}

	if cfg.Cache.Enabled {
		app.cache = newResultCache(cfg.Cache.MaxEntries)
		deps.Cache = app.cache
		hdeps.Cache = app.cache
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}
	app.tree = tree

	if cfg.Events.Enabled {
		bus := events.NewBus(events.Config{BufferSize: int64(cfg.Events.BufferSize)})
		store := cache.NewWindowStore(cfg.Events.PopularWindow, cfg.Events.PopularBuckets, cfg.Events.PopularMaxKeys)
		app.tracker = events.NewQueryTracker(bus, store)
		deps.Publisher = bus
		hdeps.Queries = app.tracker

		tree.AddEventService(services.NewEventBusService(bus))
		tree.AddEventService(services.NewQueryTrackerService(app.tracker))
	}

	search, err := pipeline.NewService(pipelineConfig(cfg.Pipeline), deps)
	if err != nil {
		return nil, fmt.Errorf("create search pipeline: %w", err)
	}
	app.search = search
	hdeps.Search = search

	router := api.NewRouter(api.NewHandler(hdeps), api.NewChiMiddleware(middlewareConfig(cfg.Security)), api.RouterOptions{
		EnableSwagger: cfg.Server.EnableSwagger,
	})
	app.handler = router.SetupChi()

	server := &http.Server{
		Handler:           app.handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	app.httpSvc = services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout)
	tree.AddAPIService(app.httpSvc)

	return app, nil
}

// ready reports whether the listener is bound and, when events are on, the
// query tracker has subscribed.
func (app *application) ready() bool {
	if app.httpSvc == nil || !isClosed(app.httpSvc.Ready()) {
		return false
	}
	return app.tracker == nil || isClosed(app.tracker.Ready())
}

// run serves until ctx is canceled and the tree has stopped.
func (app *application) run(ctx context.Context) error {
	logging.Info().Str("addr", app.cfg.Server.Addr()).Msg("Starting supervisor tree")
	errCh := app.tree.ServeBackground(ctx)

	go func() {
		select {
		case <-app.httpSvc.Ready():
			logging.Info().Str("addr", app.httpSvc.Addr()).Msg("HTTP server listening")
		case <-ctx.Done():
		}
	}()

	// The channel delivers exactly one value and is never closed.
	var runErr error
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		runErr = err
	}

	unstopped, _ := app.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return runErr
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// resultCache is the FIFO result cache with its size exported as a gauge.
type resultCache struct {
	*cache.FIFOCache[cache.SearchKey, *models.SearchResult]
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		FIFOCache: cache.NewFIFO(capacity,
			cache.WithEvictCallback[cache.SearchKey, *models.SearchResult](func(cache.SearchKey) {
				metrics.RecordCacheEviction()
			}),
		),
	}
}

// Put stores result and refreshes the size gauge.
func (c *resultCache) Put(key cache.SearchKey, result *models.SearchResult) bool {
	evicted := c.FIFOCache.Put(key, result)
	metrics.SetCacheEntries(c.Len())
	return evicted
}

// Clear empties the cache and refreshes the size gauge.
func (c *resultCache) Clear() int {
	n := c.FIFOCache.Clear()
	metrics.SetCacheEntries(0)
	return n
}

func youtubeConfig(c config.YouTubeConfig) youtube.Config {
	return youtube.Config{
		BaseURL:           c.BaseURL,
		APIBaseURL:        c.APIBaseURL,
		APIKey:            c.APIKey,
		Language:          c.Language,
		UserAgent:         c.UserAgent,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
		MaxRetries:        c.MaxRetries,
		RetryBaseDelay:    c.RetryBaseDelay,
		MaxBodyBytes:      c.MaxBodyBytes,
	}
}

func breakerConfig(c config.CircuitBreakerConfig) youtube.BreakerConfig {
	return youtube.BreakerConfig{
		MaxRequests:  c.MaxRequests,
		Interval:     c.Interval,
		Timeout:      c.Timeout,
		MinRequests:  c.MinRequests,
		FailureRatio: c.FailureRatio,
	}
}

func pipelineConfig(c config.PipelineConfig) pipeline.Config {
	return pipeline.Config{
		ScanLimit:     c.ScanLimit,
		PageSize:      c.PageSize,
		MinTermMatch:  c.MinTermMatch,
		ShortCutoff:   c.ShortCutoff,
		RecencyWindow: c.RecencyWindow,
		RunTimeout:    c.RunTimeout,
		Enricher: pipeline.EnricherConfig{
			Concurrency:        c.Concurrency,
			DetailTimeout:      c.DetailTimeout,
			CommentsTimeout:    c.CommentsTimeout,
			TranscriptTimeout:  c.TranscriptTimeout,
			CommentLimit:       c.CommentLimit,
			TranscriptFraction: c.TranscriptFraction,
		},
		Weights: pipeline.Weights{
			Title:       c.Weights.Title,
			Description: c.Weights.Description,
			Transcript:  c.Weights.Transcript,
			Sentiment:   c.Weights.Sentiment,
			Engagement:  c.Weights.Engagement,
			Popularity:  c.Weights.Popularity,
		},
	}
}

func middlewareConfig(c config.SecurityConfig) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	if len(c.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = c.CORSOrigins
	}
	mw.RateLimitRequests = c.RateLimitReqs
	mw.RateLimitWindow = c.RateLimitWindow
	mw.RateLimitDisabled = c.RateLimitDisabled
	mw.TrustedProxies = c.TrustedProxies
	return mw
}

// logStartupWarnings flags settings that are unsafe outside development.
func logStartupWarnings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins for browser clients in production")
	}
	if !cfg.YouTube.CircuitBreaker.Enabled {
		logging.Warn().Msg("Provider circuit breakers are disabled (CIRCUIT_BREAKER_ENABLED=false)")
	}
	if cfg.YouTube.APIKey == "" {
		logging.Info().Msg("YOUTUBE_API_KEY not set; comments and sentiment will use neutral defaults")
	}
}
