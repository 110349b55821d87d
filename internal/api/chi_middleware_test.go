// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseTrustedProxies(t *testing.T) {
	t.Parallel()

	got := parseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.5 ", "", "not-an-ip", "10.0.0.1/99", "::ffff:172.16.0.1"})
	want := []string{"10.0.0.0/8", "192.168.1.5/32", "172.16.0.1/32"}
	if len(got) != len(want) {
		t.Fatalf("parseTrustedProxies() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("prefix %d = %s, want %s", i, got[i], want[i])
		}
	}

	if all := parseTrustedProxies([]string{"*"}); len(all) != 2 {
		t.Errorf("wildcard = %v, want v4 and v6 catch-alls", all)
	}
}

func TestRealIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		trusted []string
		remote  string
		want    string
	}{
		{"no trusted proxies ignores header", nil, "203.0.113.9:5000", "203.0.113.9:5000"},
		{"trusted peer", []string{"10.0.0.0/8"}, "10.1.2.3:5000", "198.51.100.7"},
		{"untrusted peer", []string{"10.0.0.0/8"}, "203.0.113.9:5000", "203.0.113.9:5000"},
		{"wildcard", []string{"*"}, "203.0.113.9:5000", "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultChiMiddlewareConfig()
			cfg.TrustedProxies = tt.trusted
			mw := NewChiMiddleware(cfg)

			var seen string
			h := mw.RealIP()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/search", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "198.51.100.7")
			h.ServeHTTP(httptest.NewRecorder(), req)

			if seen != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", seen, tt.want)
			}
		})
	}
}
