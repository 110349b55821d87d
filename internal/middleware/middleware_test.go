// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vidrank/internal/metrics"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var capturedID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Fatalf("X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if capturedID != responseID {
		t.Errorf("context ID %q != header ID %q", capturedID, responseID)
	}
}

func TestRequestID_InboundHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{"well formed", "abc-123", true},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"control characters", "abc\n123", false},
		{"spaces", "abc 123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.inbound)
			rec := httptest.NewRecorder()
			handler(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if (got == tt.inbound) != tt.keep {
				t.Errorf("response ID = %q, keep inbound = %v", got, tt.keep)
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/things/{id}", PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/things/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/"+id, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d, want 418", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("counter delta = %v, want 3", got)
	}
}

func TestRoutePattern_Unmatched(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := RoutePattern(req); got != unmatchedRoute {
		t.Errorf("RoutePattern() = %q, want %q", got, unmatchedRoute)
	}
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
	rec.WriteHeader(http.StatusBadGateway)
	rec.WriteHeader(http.StatusOK)
	if rec.statusCode != http.StatusBadGateway {
		t.Errorf("statusCode = %d, want 502", rec.statusCode)
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`{"title":"Funny Cats"}`, 100)
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})

	t.Run("gzip accepted", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "br, gzip")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
		}
		zr, err := gzip.NewReader(rec.Body)
		if err != nil {
			t.Fatalf("gzip.NewReader: %v", err)
		}
		got, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != body {
			t.Error("decompressed body mismatch")
		}
	})

	t.Run("gzip refused", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip;q=0")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Header().Get("Content-Encoding") != "" {
			t.Error("response should not be compressed")
		}
		if rec.Body.String() != body {
			t.Error("body mismatch")
		}
	})
}

func TestAcceptsGzip(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                 false,
		"gzip":             true,
		"GZIP":             true,
		"deflate, gzip":    true,
		"gzip;q=0.5":       true,
		"gzip; q=0":        false,
		"br":               false,
		"x-gzip, identity": false,
	}
	for header, want := range tests {
		if got := acceptsGzip(header); got != want {
			t.Errorf("acceptsGzip(%q) = %v, want %v", header, got, want)
		}
	}
}

func TestPerformanceMonitor_Stats(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10, time.Second)
	for _, d := range []int64{10, 20, 30, 40} {
		pm.RecordRequest(RequestMetrics{Route: "/api/v1/search", Method: "GET", DurationMS: d, StatusCode: 200})
	}
	pm.RecordRequest(RequestMetrics{Route: "/api/v1/search", Method: "GET", DurationMS: 50, StatusCode: 502})
	pm.RecordRequest(RequestMetrics{Route: "/api/v1/health", Method: "GET", DurationMS: 1, StatusCode: 200})

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	search := stats[0]
	if search.Endpoint != "GET /api/v1/search" {
		t.Fatalf("busiest endpoint = %q", search.Endpoint)
	}
	if search.RequestCount != 5 || search.ErrorCount != 1 {
		t.Errorf("counts = %d/%d, want 5/1", search.RequestCount, search.ErrorCount)
	}
	if search.AvgDuration != 30 || search.P50Duration != 30 || search.MinDuration != 10 || search.MaxDuration != 50 {
		t.Errorf("unexpected durations: %+v", search)
	}
}

func TestPerformanceMonitor_WindowWraps(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(3, time.Second)
	for i := int64(1); i <= 5; i++ {
		pm.RecordRequest(RequestMetrics{Route: "/r", Method: "GET", DurationMS: i})
	}

	recent := pm.GetRecentMetrics(10)
	if len(recent) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(recent))
	}
	for i, want := range []int64{3, 4, 5} {
		if recent[i].DurationMS != want {
			t.Errorf("recent[%d] = %d, want %d", i, recent[i].DurationMS, want)
		}
	}
	if got := pm.GetRecentMetrics(1); len(got) != 1 || got[0].DurationMS != 5 {
		t.Errorf("GetRecentMetrics(1) = %+v", got)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(5, time.Hour)
	r := chi.NewRouter()
	r.Get("/api/v1/search", pm.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/search?query=cats", nil))

	recent := pm.GetRecentMetrics(1)
	if len(recent) != 1 {
		t.Fatal("expected one recorded request")
	}
	if recent[0].Route != "/api/v1/search" || recent[0].StatusCode != http.StatusBadGateway {
		t.Errorf("recorded %+v", recent[0])
	}
}
