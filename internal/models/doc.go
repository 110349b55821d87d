// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package models defines the entities that flow through the search pipeline.
//
// Lifecycle of one request:
//
//	raw record ──Normalize──▶ Candidate ──Enrich──▶ EnrichedItem ──Rank──▶ SearchResult
//	                              │                      ▲
//	                              └── DetailMetrics ─────┤
//	                                  SentimentSample ───┤
//	                                  TranscriptSample ──┘
//
// Candidate, DetailMetrics, SentimentSample and TranscriptSample live only for
// the duration of one enrichment. EnrichedItem is immutable once scored and
// survives inside a cached SearchResult until the entry is evicted.
package models
