// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/pipeline"
)

// upstreamName labels the video provider in client-facing messages.
const upstreamName = "YouTube"

// msgQueryRequired is returned for a missing or blank query.
const msgQueryRequired = "Query parameter is required"

// searchFailure is the status, code and message a search error maps to.
type searchFailure struct {
	status  int
	code    string
	message string
}

// classifySearchError maps pipeline errors onto HTTP semantics.
func classifySearchError(err error) searchFailure {
	switch {
	case errors.Is(err, pipeline.ErrInvalidQuery):
		return searchFailure{http.StatusBadRequest, ErrCodeValidationFailed, msgQueryRequired}
	case errors.Is(err, pipeline.ErrUpstreamUnparseable):
		return searchFailure{http.StatusInternalServerError, ErrCodeUpstreamUnparseable, "Could not interpret response from " + upstreamName}
	case errors.Is(err, pipeline.ErrUpstreamUnavailable):
		return searchFailure{http.StatusBadGateway, ErrCodeExternalServiceFail, "External service unavailable: " + upstreamName}
	default:
		return searchFailure{http.StatusInternalServerError, ErrCodeInternalError, "Search failed"}
	}
}

// writeSearchError writes err in the enveloped format. Provider failures are
// logged here with the underlying cause, which the client never sees.
func writeSearchError(rw *ResponseWriter, err error) {
	f := classifySearchError(err)
	switch f.code {
	case ErrCodeUpstreamUnparseable:
		logging.Ctx(rw.r.Context()).Error().Err(err).Str("service", upstreamName).Msg("Unparseable upstream payload")
	case ErrCodeExternalServiceFail:
		logging.Ctx(rw.r.Context()).Error().Err(err).Str("service", upstreamName).Msg("External service error")
	}
	rw.Fail(f.status, f.code, f.message, nil)
}

// legacyError is the bare error body of the legacy search route.
type legacyError struct {
	Error string `json:"error"`
}
