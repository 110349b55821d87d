// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"

	"github.com/tomtom215/vidrank/internal/cache"
)

// CacheStatsResponse is the body of GET /api/v1/cache/stats.
type CacheStatsResponse struct {
	Enabled bool        `json:"enabled"`
	Stats   cache.Stats `json:"stats"`
	HitRate float64     `json:"hit_rate"`

	// Keys lists cached searches from oldest to newest, which is eviction order.
	Keys []cache.SearchKey `json:"keys,omitempty"`
}

// CacheClearResponse is the body of DELETE /api/v1/cache.
type CacheClearResponse struct {
	Removed int `json:"removed"`
}

// CacheStats reports result cache counters.
//
// @Summary Result cache statistics
// @Description Returns hit, miss and eviction counters, current size and capacity, and the cached keys in eviction order.
// @Tags Cache
// @Produce json
// @Success 200 {object} APIResponse{data=CacheStatsResponse}
// @Router /cache/stats [get]
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		WriteSuccess(w, r, CacheStatsResponse{Enabled: false})
		return
	}
	stats := h.cache.Stats()
	WriteSuccess(w, r, CacheStatsResponse{
		Enabled: true,
		Stats:   stats,
		HitRate: stats.HitRate(),
		Keys:    h.cache.Keys(),
	})
}

// CacheClear drops every cached search result.
//
// @Summary Clear the result cache
// @Tags Cache
// @Produce json
// @Success 200 {object} APIResponse{data=CacheClearResponse}
// @Router /cache [delete]
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	removed := 0
	if h.cache != nil {
		removed = h.cache.Clear()
	}
	h.logger.Info().Int("removed", removed).Msg("Result cache cleared")
	WriteSuccess(w, r, CacheClearResponse{Removed: removed})
}
