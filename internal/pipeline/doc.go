// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package pipeline turns a free-text query into a ranked, bounded list of
enriched videos.

Stages, in order:

	cache lookup ─hit─▶ response
	     │miss
	     ▼
	SourceProvider.Search ─▶ Normalizer ─▶ Enricher (fan-out) ─▶ Scorer ─▶ Filter/Sort/Page ─▶ cache put

Normalizer maps raw provider records to models.Candidate and drops those that
lack an ID or match too few query terms. Enricher runs the detail, comments
and transcript sub-fetches for each candidate concurrently, gated by a
weighted semaphore, each under its own timeout. A failed sub-fetch falls back
to its default (views 0, sentiment 0.5, no transcript); a candidate with zero
views is dropped. Scorer combines relevance, sentiment, engagement and
popularity with configurable Weights. Ranking filters by upload date against
one boundary per request, sorts, truncates and splits short and long videos.

Only the initial search is request-fatal. Its errors wrap
ErrUpstreamUnavailable or ErrUpstreamUnparseable.

Collaborators are interfaces declared here and injected through Deps.
*/
package pipeline
