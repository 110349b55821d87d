// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"base url scheme", func(c *Config) { c.YouTube.BaseURL = "ftp://youtube.com" }, "YOUTUBE_BASE_URL"},
		{"base url path", func(c *Config) { c.YouTube.BaseURL = "https://youtube.com/watch" }, "YOUTUBE_BASE_URL"},
		{"api url path allowed", func(c *Config) { c.YouTube.APIBaseURL = "http://localhost:8080/youtube/v3" }, ""},
		{"burst", func(c *Config) { c.YouTube.Burst = 0 }, "YOUTUBE_BURST"},
		{"breaker ratio", func(c *Config) { c.YouTube.CircuitBreaker.FailureRatio = 1.5 }, "CIRCUIT_BREAKER_FAILURE_RATIO"},
		{"breaker disabled skips checks", func(c *Config) {
			c.YouTube.CircuitBreaker.Enabled = false
			c.YouTube.CircuitBreaker.FailureRatio = 0
		}, ""},
		{"scan limit", func(c *Config) { c.Pipeline.ScanLimit = 201 }, "SCAN_LIMIT"},
		{"page size", func(c *Config) { c.Pipeline.PageSize = 0 }, "PAGE_SIZE"},
		{"concurrency", func(c *Config) { c.Pipeline.Concurrency = 0 }, "ENRICH_CONCURRENCY"},
		{"detail timeout", func(c *Config) { c.Pipeline.DetailTimeout = 0 }, "DETAIL_TIMEOUT"},
		{"min term match", func(c *Config) { c.Pipeline.MinTermMatch = 1.2 }, "MIN_TERM_MATCH"},
		{"transcript fraction", func(c *Config) { c.Pipeline.TranscriptFraction = 0 }, "TRANSCRIPT_FRACTION"},
		{"negative weight", func(c *Config) { c.Pipeline.Weights.Sentiment = -0.1 }, "WEIGHT_SENTIMENT"},
		{"weights sum", func(c *Config) { c.Pipeline.Weights.Title = 0.9 }, "sum to at most 1"},
		{"popularity outside sum", func(c *Config) { c.Pipeline.Weights.Popularity = 5 }, ""},
		{"cache size", func(c *Config) { c.Cache.MaxEntries = 0 }, "CACHE_MAX_ENTRIES"},
		{"cache disabled", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.MaxEntries = 0
		}, ""},
		{"rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"popular buckets", func(c *Config) { c.Events.PopularBuckets = 0 }, "POPULAR_QUERIES_BUCKETS"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
