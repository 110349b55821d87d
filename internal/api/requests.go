// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/vidrank/internal/models"
	"github.com/tomtom215/vidrank/internal/validation"
)

// maxQueryLength bounds the search text accepted from clients.
const maxQueryLength = 200

// SearchRequest holds the query parameters of a search.
//
// Fields:
//   - Query: search text, required and non-blank
//   - UploadDate: all, last_6_months or before_6_months (default all)
//   - SortBy: relevance, most_viewed or most_liked (default relevance)
type SearchRequest struct {
	Query      string `query:"query" validate:"required,notblank,max=200"`
	UploadDate string `query:"uploadDate" validate:"omitempty,oneof=all last_6_months before_6_months"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=relevance most_viewed most_liked"`
}

// legacySearchRequest validates only the query; the legacy route falls back
// to defaults for unrecognised filter and sort values.
type legacySearchRequest struct {
	Query string `query:"query" validate:"required,notblank,max=200"`
}

// parseSearchRequest reads the search parameters. Both camelCase and
// snake_case spellings are accepted for the optional parameters.
func parseSearchRequest(r *http.Request) SearchRequest {
	q := r.URL.Query()
	return SearchRequest{
		Query:      strings.TrimSpace(q.Get("query")),
		UploadDate: strings.ToLower(strings.TrimSpace(firstParam(q, "uploadDate", "upload_date"))),
		SortBy:     strings.ToLower(strings.TrimSpace(firstParam(q, "sortBy", "sort_by"))),
	}
}

// validate checks the request. strict also enforces the enumerations.
func (req SearchRequest) validate(strict bool) *validation.RequestValidationError {
	if strict {
		return validation.ValidateStruct(&req)
	}
	return validation.ValidateStruct(&legacySearchRequest{Query: req.Query})
}

// Params converts the request into pipeline parameters.
func (req SearchRequest) Params() models.SearchParams {
	return models.SearchParams{
		Query:        req.Query,
		UploadFilter: models.ParseUploadFilter(req.UploadDate),
		SortBy:       models.ParseSortBy(req.SortBy),
	}
}

// firstParam returns the first non-empty value among names.
func firstParam(q url.Values, names ...string) string {
	for _, name := range names {
		if v := q.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// getIntParam parses an integer query parameter, clamping it to [lo, hi] and
// falling back to def when absent or malformed.
func getIntParam(r *http.Request, name string, def, lo, hi int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return min(max(n, lo), hi)
}
