// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"testing"

	"github.com/tomtom215/vidrank/internal/models"
)

func TestScorer_Score(t *testing.T) {
	s := NewScorer(DefaultWeights())
	item := &models.EnrichedItem{
		Candidate: models.Candidate{ID: "a", Title: "Funny Cats"},
		Views:     1000,
		Likes:     10,
		Sentiment: 0.5,
	}

	b := s.Score(item, Terms("cats"))
	if b.TitleMatch != 1 || b.DescriptionMatch != 0 || b.TranscriptMatch != 0 {
		t.Errorf("match fractions = %v/%v/%v", b.TitleMatch, b.DescriptionMatch, b.TranscriptMatch)
	}
	if !approxEqual(b.Engagement, 0.01) {
		t.Errorf("Engagement = %v, want 0.01", b.Engagement)
	}
	if b.Sentiment != 0.5 {
		t.Errorf("Sentiment = %v, want 0.5", b.Sentiment)
	}
	want := 0.30*1 + 0.20*0.5 + 0.30*0.01 + 1000*1e-7
	if !approxEqual(b.Total, want) {
		t.Errorf("Total = %v, want %v", b.Total, want)
	}
	if again := s.Score(item, Terms("cats")); again != b {
		t.Error("Score is not deterministic")
	}
}

func TestScorer_FieldWeights(t *testing.T) {
	s := NewScorer(DefaultWeights())
	terms := Terms("cats")
	inTitle := &models.EnrichedItem{Candidate: models.Candidate{Title: "cats"}, Views: 1}
	inDesc := &models.EnrichedItem{Candidate: models.Candidate{Description: "cats"}, Views: 1}
	inTranscript := &models.EnrichedItem{Transcript: "cats", Views: 1}

	ti, de, tr := s.Score(inTitle, terms).Relevance, s.Score(inDesc, terms).Relevance, s.Score(inTranscript, terms).Relevance
	if !(ti > de && de > tr && tr > 0) {
		t.Errorf("relevance order title %v > description %v > transcript %v violated", ti, de, tr)
	}
}

func TestScorer_ZeroViews(t *testing.T) {
	b := NewScorer(DefaultWeights()).Score(&models.EnrichedItem{Likes: 5}, nil)
	if b.Engagement != 0 || b.Popularity != 0 || b.Relevance != 0 {
		t.Errorf("breakdown = %+v, want zero engagement, popularity and relevance", b)
	}
}

func TestScorer_Apply(t *testing.T) {
	items := []*models.EnrichedItem{
		{Candidate: models.Candidate{Title: "cats"}, Views: 10, Sentiment: 0.5},
		{Candidate: models.Candidate{Title: "dogs"}, Views: 10, Sentiment: 0.5},
	}
	NewScorer(DefaultWeights()).Apply(items, Terms("cats"))
	for _, it := range items {
		if it.Score != it.Breakdown.Total {
			t.Errorf("Score %v != Breakdown.Total %v", it.Score, it.Breakdown.Total)
		}
	}
	if items[0].Score <= items[1].Score {
		t.Error("matching title should score higher")
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("DefaultWeights().Validate() = %v", err)
	}
	over := DefaultWeights()
	over.Title = 0.9
	if err := over.Validate(); err == nil {
		t.Error("expected error for bounded weights above 1")
	}
	neg := DefaultWeights()
	neg.Popularity = -1
	if err := neg.Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
}
