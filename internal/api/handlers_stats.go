// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/middleware"
)

// Popular query limits
const (
	defaultPopularLimit = 10
	maxPopularLimit     = 100
)

// PopularQueries lists the most searched queries in the tracker's window.
//
// @Summary Popular search queries
// @Description Most frequent normalised queries over the recent window, counted from search.completed events. Cache hits count too.
// @Tags Stats
// @Produce json
// @Param limit query int false "Maximum entries (1-100, default 10)"
// @Success 200 {object} APIResponse{data=[]cache.KeyCount}
// @Failure 503 {object} APIResponse "Query tracking disabled"
// @Router /stats/queries [get]
func (h *Handler) PopularQueries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.queries == nil {
		rw.ServiceUnavailable("Query tracking is disabled")
		return
	}

	limit := getIntParam(r, "limit", defaultPopularLimit, 1, maxPopularLimit)
	top := h.queries.Top(limit)
	if top == nil {
		top = []cache.KeyCount{}
	}
	count := len(top)
	rw.SuccessWithMeta(top, &APIMeta{Count: &count})
}

// EndpointStats reports per-route latency percentiles.
//
// @Summary Endpoint latency statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} APIResponse{data=[]middleware.EndpointStats}
// @Router /stats/endpoints [get]
func (h *Handler) EndpointStats(w http.ResponseWriter, r *http.Request) {
	if h.perfMon == nil {
		WriteSuccess(w, r, []middleware.EndpointStats{})
		return
	}
	WriteSuccess(w, r, h.perfMon.GetStats())
}
