// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/models"
	"github.com/tomtom215/vidrank/internal/parse"
	"github.com/tomtom215/vidrank/internal/sentiment"
)

// EnricherConfig bounds the enrichment fan-out.
type EnricherConfig struct {
	// Concurrency is the maximum number of candidates enriched at once.
	Concurrency int

	DetailTimeout     time.Duration
	CommentsTimeout   time.Duration
	TranscriptTimeout time.Duration

	// CommentLimit caps the comments requested per video.
	CommentLimit int

	// TranscriptFraction is the leading share of a transcript's duration
	// kept for matching.
	TranscriptFraction float64
}

// DefaultEnricherConfig returns the production defaults.
func DefaultEnricherConfig() EnricherConfig {
	return EnricherConfig{
		Concurrency:        10,
		DetailTimeout:      10 * time.Second,
		CommentsTimeout:    8 * time.Second,
		TranscriptTimeout:  8 * time.Second,
		CommentLimit:       50,
		TranscriptFraction: 0.25,
	}
}

// Enricher fetches detail, comment and transcript data for candidates.
// Comments and Transcripts may be nil, in which case those sub-fetches
// default with models.ReasonNotConfigured.
type Enricher struct {
	source      SourceProvider
	comments    CommentProvider
	transcripts TranscriptProvider
	classifier  SentimentClassifier
	schema      Schema
	cfg         EnricherConfig
	sem         *semaphore.Weighted
	logger      zerolog.Logger
}

// NewEnricher builds an Enricher. Zero config fields take defaults.
func NewEnricher(cfg EnricherConfig, schema Schema, source SourceProvider, comments CommentProvider,
	transcripts TranscriptProvider, classifier SentimentClassifier) *Enricher {
	def := DefaultEnricherConfig()
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.DetailTimeout <= 0 {
		cfg.DetailTimeout = def.DetailTimeout
	}
	if cfg.CommentsTimeout <= 0 {
		cfg.CommentsTimeout = def.CommentsTimeout
	}
	if cfg.TranscriptTimeout <= 0 {
		cfg.TranscriptTimeout = def.TranscriptTimeout
	}
	if cfg.CommentLimit <= 0 {
		cfg.CommentLimit = def.CommentLimit
	}
	if cfg.TranscriptFraction <= 0 || cfg.TranscriptFraction > 1 {
		cfg.TranscriptFraction = def.TranscriptFraction
	}

	return &Enricher{
		source:      source,
		comments:    comments,
		transcripts: transcripts,
		classifier:  classifier,
		schema:      schema,
		cfg:         cfg,
		sem:         semaphore.NewWeighted(int64(cfg.Concurrency)),
		logger:      logging.WithComponent("enricher"),
	}
}

// EnrichAll enriches cands concurrently and returns the viable items in
// input order together with drop counts by reason. now anchors relative
// upload dates for the whole batch.
func (e *Enricher) EnrichAll(ctx context.Context, cands []models.Candidate, now time.Time) ([]*models.EnrichedItem, map[string]int) {
	slots := make([]*models.EnrichedItem, len(cands))
	dropped := make(map[string]int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	drop := func(reason string) {
		mu.Lock()
		dropped[reason]++
		mu.Unlock()
	}

	for i := range cands {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			// Context ended while waiting; the rest are never started.
			for range cands[i:] {
				drop(DropCancelled)
			}
			break
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer e.sem.Release(1)

			item, err := e.Enrich(ctx, cands[i], now)
			if err != nil {
				reason := DropDetailFailed
				var de *DropError
				if errors.As(err, &de) {
					reason = de.Reason
				}
				if errors.Is(err, ErrNotViable) {
					e.logger.Debug().Str("id", cands[i].ID).Str("reason", reason).Msg("Candidate not viable")
				} else {
					e.logger.Warn().Err(err).Str("id", cands[i].ID).Msg("Enrichment failed")
				}
				drop(reason)
				return
			}
			slots[i] = item
		}(i)
	}
	wg.Wait()

	items := make([]*models.EnrichedItem, 0, len(cands))
	for _, item := range slots {
		if item != nil {
			items = append(items, item)
		}
	}
	for reason, n := range dropped {
		metrics.RecordDropped(reason, n)
	}
	return items, dropped
}

// Enrich runs the three sub-fetches for c concurrently and merges them. It
// returns a *DropError when the detail fetch fails or reports zero views.
// Comment and transcript failures only degrade the item.
func (e *Enricher) Enrich(ctx context.Context, c models.Candidate, now time.Time) (*models.EnrichedItem, error) {
	start := time.Now()
	metrics.TrackEnrichment(true)
	defer func() {
		metrics.TrackEnrichment(false)
		metrics.RecordEnrichment(time.Since(start))
	}()

	var (
		wg         sync.WaitGroup
		detail     models.SubFetch[models.DetailMetrics]
		sent       models.SubFetch[models.SentimentSample]
		transcript models.SubFetch[models.TranscriptSample]
	)
	wg.Add(3)
	go func() { defer wg.Done(); detail = e.fetchDetail(ctx, c, now) }()
	go func() { defer wg.Done(); sent = e.fetchSentiment(ctx, c.ID) }()
	go func() { defer wg.Done(); transcript = e.fetchTranscript(ctx, c.ID) }()
	wg.Wait()

	log := e.logger.With().Str("video_id", c.ID).Logger()
	for _, r := range []struct {
		op     models.SubFetchOp
		reason string
		err    error
	}{
		{detail.Op, detail.Reason, detail.Err},
		{sent.Op, sent.Reason, sent.Err},
		{transcript.Op, transcript.Reason, transcript.Err},
	} {
		metrics.RecordSubFetch(string(r.op), r.reason)
		if r.err != nil {
			log.Debug().Err(r.err).Str("op", string(r.op)).Str("reason", r.reason).Msg("Sub-fetch defaulted")
		}
	}

	if detail.Defaulted {
		reason := DropDetailFailed
		if detail.Reason == models.ReasonEmpty {
			reason = DropDetailMissing
		}
		return nil, &DropError{ID: c.ID, Reason: reason, Err: detail.Err}
	}
	if detail.Value.Views == 0 {
		return nil, &DropError{ID: c.ID, Reason: DropZeroViews}
	}

	item := &models.EnrichedItem{
		Candidate:  c,
		Views:      detail.Value.Views,
		Likes:      detail.Value.Likes,
		Sentiment:  sent.Value.Ratio,
		UploadDate: models.Date{Time: detail.Value.UploadDate},
		Transcript: transcript.Value.Text(),
	}
	if sent.Defaulted {
		item.Degraded = append(item.Degraded, models.OpComments)
	}
	if transcript.Defaulted {
		item.Degraded = append(item.Degraded, models.OpTranscript)
	}
	return item, nil
}

func (e *Enricher) fetchDetail(ctx context.Context, c models.Candidate, now time.Time) models.SubFetch[models.DetailMetrics] {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.DetailTimeout)
	defer cancel()

	raw, err := e.source.Detail(ctx, c.ID)
	if err != nil {
		return models.Defaulted(models.OpDetail, models.DetailMetrics{ID: c.ID}, reasonFor(err), err)
	}

	info, ok := extract.First(raw, e.schema.PrimaryInfo)
	if !ok {
		return models.Defaulted(models.OpDetail, models.DetailMetrics{ID: c.ID}, models.ReasonEmpty, nil)
	}

	published := c.PublishedText
	if published == "" || published == DefaultPublished {
		published = extract.FirstText(info, e.schema.RelativeDate...)
	}
	return models.Fetched(models.OpDetail, models.DetailMetrics{
		ID:         c.ID,
		Views:      parse.Count(extract.FirstText(info, e.schema.Views...)),
		Likes:      parse.Count(extract.FirstText(info, e.schema.Likes...)),
		UploadDate: parse.RelativeTime(published, now),
	})
}

func (e *Enricher) fetchSentiment(ctx context.Context, id string) models.SubFetch[models.SentimentSample] {
	neutral := models.SentimentSample{ID: id, Ratio: models.NeutralSentiment}
	if e.comments == nil || e.classifier == nil {
		return models.Defaulted(models.OpComments, neutral, models.ReasonNotConfigured, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.CommentsTimeout)
	defer cancel()

	comments, err := e.comments.Comments(ctx, id, e.cfg.CommentLimit)
	if err != nil {
		return models.Defaulted(models.OpComments, neutral, reasonFor(err), err)
	}
	if len(comments) == 0 {
		return models.Defaulted(models.OpComments, neutral, models.ReasonEmpty, nil)
	}
	if len(comments) > e.cfg.CommentLimit {
		comments = comments[:e.cfg.CommentLimit]
	}
	return models.Fetched(models.OpComments, SentimentRatio(id, comments, e.classifier))
}

// SentimentRatio weighs each comment by 1 + 0.1×likes and returns the
// positive share of polarized weight, 0.5 when nothing is polarized.
func SentimentRatio(id string, comments []models.Comment, classifier SentimentClassifier) models.SentimentSample {
	s := models.SentimentSample{ID: id, Comments: len(comments)}
	for _, c := range comments {
		likes := c.Likes
		if likes < 0 {
			likes = 0
		}
		w := 1 + 0.1*float64(likes)
		switch sentiment.PolarityOf(classifier.Classify(c.Text)) {
		case sentiment.Positive:
			s.Positive += w
		case sentiment.Negative:
			s.Negative += w
		}
	}
	if total := s.Positive + s.Negative; total > 0 {
		s.Ratio = s.Positive / total
	} else {
		s.Ratio = models.NeutralSentiment
	}
	return s
}

func (e *Enricher) fetchTranscript(ctx context.Context, id string) models.SubFetch[models.TranscriptSample] {
	empty := models.TranscriptSample{ID: id}
	if e.transcripts == nil {
		return models.Defaulted(models.OpTranscript, empty, models.ReasonNotConfigured, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.TranscriptTimeout)
	defer cancel()

	segs, err := e.transcripts.Transcript(ctx, id)
	if err != nil {
		return models.Defaulted(models.OpTranscript, empty, reasonFor(err), err)
	}
	if len(segs) == 0 {
		return models.Defaulted(models.OpTranscript, empty, models.ReasonEmpty, nil)
	}
	return models.Fetched(models.OpTranscript, SampleTranscript(id, segs, e.cfg.TranscriptFraction))
}

// SampleTranscript keeps the leading segments until their cumulative
// duration reaches fraction of the total.
func SampleTranscript(id string, segs []models.TranscriptSegment, fraction float64) models.TranscriptSample {
	var total time.Duration
	for _, s := range segs {
		total += s.Duration
	}
	sample := models.TranscriptSample{ID: id, Total: total}
	if total <= 0 {
		// No timing information; keep the first segment only.
		sample.Segments = segs[:1]
		return sample
	}

	target := time.Duration(float64(total) * fraction)
	for _, s := range segs {
		if sample.Covered >= target {
			break
		}
		sample.Segments = append(sample.Segments, s)
		sample.Covered += s.Duration
	}
	return sample
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.ReasonTimeout
	case errors.Is(err, models.ErrNotConfigured):
		return models.ReasonNotConfigured
	case errors.Is(err, models.ErrCircuitOpen):
		return models.ReasonCircuitOpen
	case errors.Is(err, models.ErrNotFound):
		return models.ReasonEmpty
	default:
		return models.ReasonFailed
	}
}
