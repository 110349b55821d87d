// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"fmt"

	"github.com/tomtom215/vidrank/internal/models"
)

// Weights configures the composite score. Title, Description, Transcript,
// Sentiment and Engagement multiply terms in [0,1] and must sum to at most 1.
// Popularity multiplies the raw view count and is unbounded.
type Weights struct {
	Title       float64 `koanf:"title"`
	Description float64 `koanf:"description"`
	Transcript  float64 `koanf:"transcript"`
	Sentiment   float64 `koanf:"sentiment"`
	Engagement  float64 `koanf:"engagement"`
	Popularity  float64 `koanf:"popularity"`
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{
		Title:       0.30,
		Description: 0.15,
		Transcript:  0.05,
		Sentiment:   0.20,
		Engagement:  0.30,
		Popularity:  1e-7,
	}
}

// Validate checks ranges and the bounded-sum rule.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"title": w.Title, "description": w.Description, "transcript": w.Transcript,
		"sentiment": w.Sentiment, "engagement": w.Engagement, "popularity": w.Popularity,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative, got %v", name, v)
		}
	}
	// Small tolerance for decimal configuration such as 0.3+0.15+...
	if sum := w.Title + w.Description + w.Transcript + w.Sentiment + w.Engagement; sum > 1+1e-9 {
		return fmt.Errorf("bounded weights must sum to at most 1, got %.4f", sum)
	}
	return nil
}

// Scorer computes composite scores. It is a pure function of its inputs.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer using w.
func NewScorer(w Weights) Scorer {
	return Scorer{weights: w}
}

// Score returns the per-term breakdown for item against the query terms.
func (s Scorer) Score(item *models.EnrichedItem, terms []string) models.ScoreBreakdown {
	w := s.weights
	b := models.ScoreBreakdown{
		TitleMatch:       MatchFraction(terms, item.Title),
		DescriptionMatch: MatchFraction(terms, item.Description),
		TranscriptMatch:  MatchFraction(terms, item.Transcript),
		Sentiment:        item.Sentiment,
		Popularity:       float64(item.Views) * w.Popularity,
	}
	if item.Views > 0 {
		b.Engagement = float64(item.Likes) / float64(item.Views)
	}
	b.Relevance = w.Title*b.TitleMatch + w.Description*b.DescriptionMatch + w.Transcript*b.TranscriptMatch
	b.Total = b.Relevance + w.Sentiment*b.Sentiment + w.Engagement*b.Engagement + b.Popularity
	return b
}

// Apply scores every item in place.
func (s Scorer) Apply(items []*models.EnrichedItem, terms []string) {
	for _, item := range items {
		item.Breakdown = s.Score(item, terms)
		item.Score = item.Breakdown.Total
	}
}
