// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

import "errors"

// Request-fatal failures of the initial candidate search. Providers wrap one
// of these so the HTTP layer can pick a status without knowing the provider.
var (
	// ErrUpstreamUnavailable: the provider could not be reached or answered
	// with a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamUnparseable: the provider answered but its payload could not
	// be interpreted.
	ErrUpstreamUnparseable = errors.New("upstream payload unparseable")
)

// Sub-fetch failures that the enricher maps to a specific default reason.
var (
	// ErrNotFound: the item or the requested auxiliary data does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured: the collaborator lacks credentials or is disabled.
	ErrNotConfigured = errors.New("not configured")

	// ErrCircuitOpen: calls are being short-circuited after repeated failures.
	ErrCircuitOpen = errors.New("circuit breaker open")
)
