// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package cache holds the in-memory data structures shared across requests.
//
// FIFOCache fronts the search pipeline. It is bounded by entry count only and
// evicts strictly in insertion order: a read never refreshes an entry, so a
// hot key still ages out once N newer keys have been stored. The cache is
// process-local and is not persisted.
//
// WindowStore counts events per key over a sliding time window and backs the
// popular-queries report.
package cache
