// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package youtube talks to YouTube on behalf of the search pipeline.

Client implements the four outbound operations:

  - Search: fetches the results page and returns the raw videoRenderer
    records embedded in its ytInitialData.
  - Detail: fetches a watch page and returns its whole ytInitialData object.
  - Comments: reads top-level comment threads from the Data API v3. Requires
    an API key; without one it reports models.ErrNotConfigured.
  - Transcript: reads the timedtext XML captions for a video.

Every request waits on a token-bucket limiter (golang.org/x/time/rate) so a
burst of enrichment goroutines cannot hammer the provider, and HTTP 429
answers are retried with exponential backoff or the server's Retry-After.

CircuitBreakerClient wraps Client with one gobreaker circuit per operation,
so a comments quota outage does not block searches.

Search failures wrap models.ErrUpstreamUnavailable or
models.ErrUpstreamUnparseable. Raw records are returned untyped; the
pipeline reads them through package extract.
*/
package youtube
