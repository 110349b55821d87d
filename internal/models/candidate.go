// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

import "time"

// Candidate is a search result before enrichment.
type Candidate struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	DurationText    string `json:"duration_text"`
	DurationSeconds int    `json:"duration"`
	Channel         string `json:"channel"`
	PublishedText   string `json:"published"`
}

// DetailMetrics holds the engagement numbers read from an item's detail page.
// UploadDate is resolved from the relative published text against the
// request's clock and is never reused across requests.
type DetailMetrics struct {
	ID         string
	Views      int64
	Likes      int64
	UploadDate time.Time
}

// Comment is one comment as returned by the comment provider.
type Comment struct {
	Text  string
	Likes int64
}

// SentimentSample summarises comment polarity as the share of positive
// weight among polar comments, in [0,1].
type SentimentSample struct {
	ID       string
	Ratio    float64
	Positive float64
	Negative float64
	Comments int
}

// NeutralSentiment is the ratio used when no polar comments are available.
const NeutralSentiment = 0.5

// TranscriptSegment is one timed caption line.
type TranscriptSegment struct {
	Text     string        `json:"text"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// TranscriptSample is the leading portion of a transcript kept for matching.
type TranscriptSample struct {
	ID       string
	Segments []TranscriptSegment
	Covered  time.Duration
	Total    time.Duration
}

// Text joins the sampled segments with spaces.
func (t TranscriptSample) Text() string {
	n := 0
	for _, s := range t.Segments {
		n += len(s.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, s := range t.Segments {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
