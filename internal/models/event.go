// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

import "time"

// SearchEvent describes one answered search, cached or not.
type SearchEvent struct {
	EventID      string       `json:"event_id"`
	RequestID    string       `json:"request_id,omitempty"`
	Query        string       `json:"query"`
	UploadFilter UploadFilter `json:"upload_filter"`
	SortBy       SortBy       `json:"sort_by"`
	Items        int          `json:"items"`
	Dropped      int          `json:"dropped"`
	Cached       bool         `json:"cached"`
	DurationMS   int64        `json:"duration_ms"`
	OccurredAt   time.Time    `json:"occurred_at"`
}
