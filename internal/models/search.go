// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

import (
	"strings"
	"time"
)

// UploadFilter restricts results by upload date relative to a six month boundary.
type UploadFilter string

const (
	UploadAll           UploadFilter = "all"
	UploadLast6Months   UploadFilter = "last_6_months"
	UploadBefore6Months UploadFilter = "before_6_months"
)

// ParseUploadFilter normalises a request value. Unknown or empty values mean all.
func ParseUploadFilter(s string) UploadFilter {
	switch f := UploadFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case UploadLast6Months, UploadBefore6Months:
		return f
	default:
		return UploadAll
	}
}

// SortBy selects the ordering of results.
type SortBy string

const (
	SortRelevance  SortBy = "relevance"
	SortMostViewed SortBy = "most_viewed"
	SortMostLiked  SortBy = "most_liked"
)

// ParseSortBy normalises a request value. Unknown or empty values mean relevance.
func ParseSortBy(s string) SortBy {
	switch sb := SortBy(strings.ToLower(strings.TrimSpace(s))); sb {
	case SortMostViewed, SortMostLiked:
		return sb
	default:
		return SortRelevance
	}
}

// SearchParams is one normalised inbound query.
type SearchParams struct {
	Query        string
	UploadFilter UploadFilter
	SortBy       SortBy
}

// SearchResult is the ranked, filtered and truncated output of one pipeline run.
// Short and Long partition Items by duration and keep Items' order.
type SearchResult struct {
	Query        string          `json:"query"`
	UploadFilter UploadFilter    `json:"upload_filter"`
	SortBy       SortBy          `json:"sort_by"`
	Items        []*EnrichedItem `json:"items"`
	Short        []*EnrichedItem `json:"short"`
	Long         []*EnrichedItem `json:"long"`
	Stats        SearchStats     `json:"stats"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Cached       bool            `json:"cached"`
}

// SearchStats counts what happened to candidates during one run.
type SearchStats struct {
	Candidates int   `json:"candidates"`
	Scanned    int   `json:"scanned"`
	Relevant   int   `json:"relevant"`
	Enriched   int   `json:"enriched"`
	Dropped    int   `json:"dropped"`
	Filtered   int   `json:"filtered"`
	DurationMS int64 `json:"duration_ms"`
}

// Clone returns a shallow copy safe for setting per-response flags such as
// Cached. Items are shared; they are immutable once scored.
func (r *SearchResult) Clone() *SearchResult {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
