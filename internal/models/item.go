// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the wire format of upload dates.
const DateLayout = "2006-01-02"

// Date is a calendar date rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScoreBreakdown shows how each term contributed to Score.
type ScoreBreakdown struct {
	TitleMatch       float64 `json:"title_match"`
	DescriptionMatch float64 `json:"description_match"`
	TranscriptMatch  float64 `json:"transcript_match"`
	Relevance        float64 `json:"relevance"`
	Sentiment        float64 `json:"sentiment"`
	Engagement       float64 `json:"engagement"`
	Popularity       float64 `json:"popularity"`
	Total            float64 `json:"total"`
}

// EnrichedItem is a Candidate merged with its fetched metrics and score.
type EnrichedItem struct {
	Candidate

	Views      int64          `json:"views"`
	Likes      int64          `json:"likes"`
	Sentiment  float64        `json:"sentiment"`
	Score      float64        `json:"score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	UploadDate Date           `json:"upload_date"`

	// Transcript is the sampled transcript text used for matching. It is not
	// part of the response payload.
	Transcript string `json:"-"`

	// Degraded lists the sub-fetches that fell back to defaults.
	Degraded []SubFetchOp `json:"degraded,omitempty"`
}

// IsShort reports whether the item falls in the short bucket.
func (e *EnrichedItem) IsShort(cutoffSeconds int) bool {
	return e.DurationSeconds <= cutoffSeconds
}
