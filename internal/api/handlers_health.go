// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"
	"time"
)

// Health states
const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status          string            `json:"status"`
	Version         string            `json:"version"`
	Uptime          float64           `json:"uptime_seconds"`
	Ready           bool              `json:"ready"`
	CircuitBreakers map[string]string `json:"circuit_breakers,omitempty"`
	CacheEntries    *int              `json:"cache_entries,omitempty"`
}

// Health handles health check requests
//
// @Summary Get service health status
// @Description Reports readiness, uptime and the provider circuit breaker states. Any open circuit marks the service degraded.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:  statusHealthy,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Ready:   h.isReady(),
	}

	if h.circuits != nil {
		health.CircuitBreakers = h.circuits.States()
		for _, state := range health.CircuitBreakers {
			if state == "open" {
				health.Status = statusDegraded
			}
		}
	}
	if !health.Ready {
		health.Status = statusDegraded
	}
	if h.cache != nil {
		entries := h.cache.Stats().Entries
		health.CacheEntries = &entries
	}

	WriteSuccess(w, r, health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
//
// @Summary Liveness probe
// @Description Returns 200 while the process is alive, regardless of dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// @Summary Readiness probe
// @Description Returns 200 once background services are running, 503 otherwise. An open provider circuit does not fail readiness because cached results can still be served.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.isReady() {
		NewResponseWriter(w, r).ServiceUnavailable("Service is not ready")
		return
	}
	WriteSuccess(w, r, map[string]interface{}{
		"ready": true,
	})
}

func (h *Handler) isReady() bool {
	return h.ready == nil || h.ready()
}
