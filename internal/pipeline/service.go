// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/models"
)

// Config holds the tunables of one Service.
type Config struct {
	// ScanLimit caps how many raw candidates are considered.
	ScanLimit int

	PageSize      int
	MinTermMatch  float64
	ShortCutoff   int
	RecencyWindow time.Duration

	// RunTimeout bounds one uncached pipeline run. Runs are detached from
	// the caller's cancellation so coalesced callers share the result.
	RunTimeout time.Duration

	Enricher EnricherConfig
	Weights  Weights
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ScanLimit:     50,
		PageSize:      DefaultPageSize,
		MinTermMatch:  DefaultMinTermMatch,
		ShortCutoff:   DefaultShortCutoff,
		RecencyWindow: DefaultRecencyWindow,
		RunTimeout:    45 * time.Second,
		Enricher:      DefaultEnricherConfig(),
		Weights:       DefaultWeights(),
	}
}

// Deps are the collaborators of a Service. Source is required; a nil Cache
// disables caching and a nil Publisher disables events.
type Deps struct {
	Source      SourceProvider
	Comments    CommentProvider
	Transcripts TranscriptProvider
	Sentiment   SentimentClassifier
	Cache       ResultCache
	Publisher   EventPublisher
	Schema      *Schema
}

// Service runs searches end to end.
type Service struct {
	cfg        Config
	source     SourceProvider
	normalizer *Normalizer
	enricher   *Enricher
	scorer     Scorer
	cache      ResultCache
	publisher  EventPublisher
	group      singleflight.Group
	now        func() time.Time
	logger     zerolog.Logger
}

// NewService wires a Service. Zero config fields take DefaultConfig values.
func NewService(cfg Config, deps Deps) (*Service, error) {
	if deps.Source == nil {
		return nil, errors.New("pipeline: source provider is required")
	}

	def := DefaultConfig()
	if cfg.ScanLimit <= 0 {
		cfg.ScanLimit = def.ScanLimit
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.ShortCutoff <= 0 {
		cfg.ShortCutoff = def.ShortCutoff
	}
	if cfg.RecencyWindow <= 0 {
		cfg.RecencyWindow = def.RecencyWindow
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = def.RunTimeout
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	schema := YouTubeSchema()
	if deps.Schema != nil {
		schema = *deps.Schema
	}

	return &Service{
		cfg:        cfg,
		source:     deps.Source,
		normalizer: NewNormalizer(schema, cfg.MinTermMatch),
		enricher:   NewEnricher(cfg.Enricher, schema, deps.Source, deps.Comments, deps.Transcripts, deps.Sentiment),
		scorer:     NewScorer(cfg.Weights),
		cache:      deps.Cache,
		publisher:  deps.Publisher,
		now:        time.Now,
		logger:     logging.WithComponent("pipeline"),
	}, nil
}

// Search answers params from the cache or by running the pipeline. Concurrent
// misses for the same key share one run.
func (s *Service) Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error) {
	start := time.Now()
	params.Query = strings.TrimSpace(params.Query)
	if params.Query == "" {
		metrics.RecordSearch("invalid", false, 0, time.Since(start))
		return nil, ErrInvalidQuery
	}
	params.UploadFilter = models.ParseUploadFilter(string(params.UploadFilter))
	params.SortBy = models.ParseSortBy(string(params.SortBy))

	key := cache.NewSearchKey(params.Query, string(params.UploadFilter), string(params.SortBy))
	log := logging.CtxWith(ctx).Str("component", "pipeline").Str("query", params.Query).Logger()

	if s.cache != nil {
		cached, ok := s.cache.Get(key)
		metrics.RecordCacheLookup(ok)
		if ok {
			res := cached.Clone()
			res.Query = params.Query
			res.Cached = true
			log.Debug().Int("items", len(res.Items)).Msg("Cache hit")
			metrics.RecordSearch("cached", true, len(res.Items), time.Since(start))
			s.publish(ctx, res, time.Since(start))
			return res, nil
		}
	}

	v, err, shared := s.group.Do(key.String(), func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RunTimeout)
		defer cancel()
		return s.run(runCtx, params, key)
	})
	if err != nil {
		metrics.RecordSearch(outcomeFor(err), false, 0, time.Since(start))
		log.Error().Err(err).Msg("Search failed")
		return nil, err
	}

	// The stored result is shared with the cache and other callers.
	res := v.(*models.SearchResult).Clone()
	res.Query = params.Query
	metrics.RecordSearch("ok", false, len(res.Items), time.Since(start))
	log.Info().
		Int("items", len(res.Items)).
		Int("candidates", res.Stats.Candidates).
		Int("dropped", res.Stats.Dropped).
		Dur("duration", time.Since(start)).
		Bool("shared", shared).
		Msg("Search completed")
	s.publish(ctx, res, time.Since(start))
	return res, nil
}

func (s *Service) run(ctx context.Context, params models.SearchParams, key cache.SearchKey) (*models.SearchResult, error) {
	start := time.Now()
	now := s.now()
	terms := Terms(params.Query)

	raw, err := s.source.Search(ctx, params.Query)
	if err != nil {
		if !errors.Is(err, ErrUpstreamUnavailable) && !errors.Is(err, ErrUpstreamUnparseable) {
			err = fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		return nil, fmt.Errorf("search %q: %w", params.Query, err)
	}

	stats := models.SearchStats{Candidates: len(raw)}
	if len(raw) > s.cfg.ScanLimit {
		raw = raw[:s.cfg.ScanLimit]
	}
	stats.Scanned = len(raw)

	cands := make([]models.Candidate, 0, len(raw))
	var malformed, irrelevant int
	for _, rec := range raw {
		c, ok := s.normalizer.Normalize(rec)
		if !ok {
			malformed++
			continue
		}
		if !s.normalizer.Relevant(c, terms) {
			irrelevant++
			continue
		}
		cands = append(cands, c)
	}
	if malformed > 0 {
		s.logger.Debug().Int("count", malformed).Msg("Skipped search records without an id")
	}
	metrics.RecordDropped(DropMalformed, malformed)
	metrics.RecordDropped(DropIrrelevant, irrelevant)
	stats.Relevant = len(cands)

	items, dropped := s.enricher.EnrichAll(ctx, cands, now)
	stats.Enriched = len(items)
	stats.Dropped = malformed + irrelevant
	for _, n := range dropped {
		stats.Dropped += n
	}

	s.scorer.Apply(items, terms)

	boundary := RecencyBoundary(now, s.cfg.RecencyWindow)
	filtered := FilterByUpload(items, params.UploadFilter, boundary)
	stats.Filtered = len(items) - len(filtered)

	SortItems(filtered, params.SortBy)
	page := Page(filtered, s.cfg.PageSize)
	short, long := Bucket(page, s.cfg.ShortCutoff)
	stats.DurationMS = time.Since(start).Milliseconds()

	res := &models.SearchResult{
		Query:        params.Query,
		UploadFilter: params.UploadFilter,
		SortBy:       params.SortBy,
		Items:        page,
		Short:        short,
		Long:         long,
		Stats:        stats,
		GeneratedAt:  now.UTC(),
	}
	if s.cache != nil {
		s.cache.Put(key, res)
	}
	return res, nil
}

func (s *Service) publish(ctx context.Context, res *models.SearchResult, took time.Duration) {
	if s.publisher == nil {
		return
	}
	ev := models.SearchEvent{
		EventID:      uuid.NewString(),
		RequestID:    logging.RequestIDFromContext(ctx),
		Query:        res.Query,
		UploadFilter: res.UploadFilter,
		SortBy:       res.SortBy,
		Items:        len(res.Items),
		Dropped:      res.Stats.Dropped,
		Cached:       res.Cached,
		DurationMS:   took.Milliseconds(),
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.PublishSearch(ctx, ev); err != nil {
		s.logger.Warn().Err(err).Str("event_id", ev.EventID).Msg("Failed to publish search event")
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamUnparseable):
		return "unparseable"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_error"
	default:
		return "error"
	}
}
