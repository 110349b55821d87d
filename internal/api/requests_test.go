// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/vidrank/internal/models"
)

func TestParseSearchRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want SearchRequest
	}{
		{"camelCase", "/search?query=go+tutorial&uploadDate=last_6_months&sortBy=most_viewed",
			SearchRequest{Query: "go tutorial", UploadDate: "last_6_months", SortBy: "most_viewed"}},
		{"snake_case aliases", "/search?query=go&upload_date=before_6_months&sort_by=most_liked",
			SearchRequest{Query: "go", UploadDate: "before_6_months", SortBy: "most_liked"}},
		{"camelCase wins", "/search?query=go&sortBy=most_liked&sort_by=most_viewed",
			SearchRequest{Query: "go", SortBy: "most_liked"}},
		{"trimmed and lowered", "/search?query=%20%20cats%20&sortBy=%20MOST_VIEWED%20",
			SearchRequest{Query: "cats", SortBy: "most_viewed"}},
		{"empty", "/search", SearchRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseSearchRequest(httptest.NewRequest(http.MethodGet, tt.url, nil))
			if got != tt.want {
				t.Errorf("parseSearchRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		req         SearchRequest
		strictOK    bool
		lenientOK   bool
		queryMissed bool
	}{
		{"valid", SearchRequest{Query: "cats", UploadDate: "all", SortBy: "relevance"}, true, true, false},
		{"defaults", SearchRequest{Query: "cats"}, true, true, false},
		{"missing query", SearchRequest{}, false, false, true},
		{"blank query", SearchRequest{Query: "   "}, false, false, true},
		{"unknown sort", SearchRequest{Query: "cats", SortBy: "newest"}, false, true, false},
		{"unknown upload filter", SearchRequest{Query: "cats", UploadDate: "yesterday"}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			strict := tt.req.validate(true)
			if (strict == nil) != tt.strictOK {
				t.Errorf("validate(strict) = %v, want ok=%v", strict, tt.strictOK)
			}
			if strict != nil && strict.Has("query", "required", "notblank") != tt.queryMissed {
				t.Errorf("query failure = %v, want %v", !tt.queryMissed, tt.queryMissed)
			}
			if lenient := tt.req.validate(false); (lenient == nil) != tt.lenientOK {
				t.Errorf("validate(lenient) = %v, want ok=%v", lenient, tt.lenientOK)
			}
		})
	}
}

func TestSearchRequest_QueryTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, maxQueryLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if verr := (SearchRequest{Query: string(long)}).validate(true); verr == nil || !verr.Has("query", "max") {
		t.Errorf("validate() = %v, want max failure on query", verr)
	}
}

func TestSearchRequest_Params(t *testing.T) {
	t.Parallel()

	got := SearchRequest{Query: "cats", UploadDate: "last_6_months", SortBy: "most_liked"}.Params()
	want := models.SearchParams{Query: "cats", UploadFilter: models.UploadLast6Months, SortBy: models.SortMostLiked}
	if got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	got = SearchRequest{Query: "cats", UploadDate: "bogus", SortBy: "bogus"}.Params()
	if got.UploadFilter != models.UploadAll || got.SortBy != models.SortRelevance {
		t.Errorf("Params() fallback = %+v", got)
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want int
	}{
		{"/x", 10},
		{"/x?limit=5", 5},
		{"/x?limit=0", 1},
		{"/x?limit=500", 100},
		{"/x?limit=abc", 10},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.url, nil)
		if got := getIntParam(r, "limit", 10, 1, 100); got != tt.want {
			t.Errorf("getIntParam(%s) = %d, want %d", tt.url, got, tt.want)
		}
	}
}
