// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is configured once with:
//   - field names taken from the `query` (then `json`) struct tag, so errors
//     name the request parameter the client actually sent
//   - a notblank tag rejecting whitespace-only strings
//
// # Quick Start
//
//	type SearchRequest struct {
//	    Query  string `query:"query" validate:"required,notblank,max=200"`
//	    SortBy string `query:"sortBy" validate:"omitempty,oneof=relevance most_viewed most_liked"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    rw.ValidationError(verr.Error(), verr.Fields)
//	    return
//	}
//
// # Error Format
//
// Each failed rule becomes a FieldError carrying the parameter name, tag and
// a client-facing message. Error() returns the lone message, or the
// field-prefixed messages joined by "; " when several rules failed.
package validation
