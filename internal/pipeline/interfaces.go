// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"context"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/models"
)

// SourceProvider returns raw candidate and detail records.
type SourceProvider interface {
	Search(ctx context.Context, query string) ([]extract.Record, error)
	Detail(ctx context.Context, id string) (extract.Record, error)
}

// CommentProvider returns a sample of top-level comments for a video.
type CommentProvider interface {
	Comments(ctx context.Context, id string, limit int) ([]models.Comment, error)
}

// TranscriptProvider returns timed caption segments for a video.
type TranscriptProvider interface {
	Transcript(ctx context.Context, id string) ([]models.TranscriptSegment, error)
}

// SentimentClassifier scores text in [-1, 1].
type SentimentClassifier interface {
	Classify(text string) float64
}

// ResultCache stores finished results by normalized key.
// cache.FIFOCache[cache.SearchKey, *models.SearchResult] satisfies it.
type ResultCache interface {
	Get(key cache.SearchKey) (*models.SearchResult, bool)
	Put(key cache.SearchKey, result *models.SearchResult) bool
}

// EventPublisher receives one event per answered search.
type EventPublisher interface {
	PublishSearch(ctx context.Context, ev models.SearchEvent) error
}
