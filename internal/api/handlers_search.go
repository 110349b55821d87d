// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"

	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/models"
)

// LegacySearchResponse is the bare body of GET /search.
type LegacySearchResponse struct {
	Short []*models.EnrichedItem `json:"short"`
	Long  []*models.EnrichedItem `json:"long"`
	Items []*models.EnrichedItem `json:"items"`
}

// Search handles ranked search requests.
//
// @Summary Search and rank videos
// @Description Fetches candidates for the query, enriches them with view, like, comment sentiment and transcript data, scores them and returns one page. Results are cached per (query, uploadDate, sortBy).
// @Tags Search
// @Produce json
// @Param query query string true "Search text"
// @Param uploadDate query string false "Upload date filter" Enums(all, last_6_months, before_6_months)
// @Param sortBy query string false "Sort order" Enums(relevance, most_viewed, most_liked)
// @Success 200 {object} APIResponse{data=models.SearchResult} "Ranked results"
// @Failure 400 {object} APIResponse "Missing query or invalid parameter"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 500 {object} APIResponse "Unparseable provider payload"
// @Failure 502 {object} APIResponse "Provider unavailable"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseSearchRequest(r)
	if verr := req.validate(true); verr != nil {
		if verr.Has("query", "required", "notblank") {
			rw.ValidationError(msgQueryRequired, nil)
			return
		}
		rw.ValidationError(verr.Error(), verr.Fields)
		return
	}

	res, err := h.search.Search(r.Context(), req.Params())
	if err != nil {
		if classifySearchError(err).code == ErrCodeInternalError {
			logging.Ctx(r.Context()).Error().Err(err).Str("query", req.Query).Msg("Search failed")
		}
		writeSearchError(rw, err)
		return
	}

	count := len(res.Items)
	rw.SuccessWithMeta(res, &APIMeta{Cached: res.Cached, Count: &count})
}

// LegacySearch serves the original unversioned search route. It returns the
// bare {short, long, items} object and a bare {error} body on failure.
// Unknown uploadDate and sortBy values fall back to defaults.
func (h *Handler) LegacySearch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseSearchRequest(r)
	if verr := req.validate(false); verr != nil {
		rw.JSON(http.StatusBadRequest, legacyError{Error: msgQueryRequired})
		return
	}

	res, err := h.search.Search(r.Context(), req.Params())
	if err != nil {
		f := classifySearchError(err)
		logging.Ctx(r.Context()).Error().Err(err).Str("code", f.code).Msg("Legacy search failed")
		rw.JSON(f.status, legacyError{Error: f.message})
		return
	}

	rw.JSON(http.StatusOK, LegacySearchResponse{
		Short: nonNil(res.Short),
		Long:  nonNil(res.Long),
		Items: nonNil(res.Items),
	})
}

// nonNil renders empty lists as [] rather than null.
func nonNil(items []*models.EnrichedItem) []*models.EnrichedItem {
	if items == nil {
		return []*models.EnrichedItem{}
	}
	return items
}
