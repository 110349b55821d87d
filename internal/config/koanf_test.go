// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at a missing file and moves into an empty
// directory so no stray config.yaml is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 10000 {
		t.Errorf("Server.Port = %d, want 10000", cfg.Server.Port)
	}
	if cfg.Pipeline.ScanLimit != 50 {
		t.Errorf("Pipeline.ScanLimit = %d, want 50", cfg.Pipeline.ScanLimit)
	}
	if cfg.Pipeline.PageSize != 10 {
		t.Errorf("Pipeline.PageSize = %d, want 10", cfg.Pipeline.PageSize)
	}
	if cfg.Pipeline.MinTermMatch != 0.5 {
		t.Errorf("Pipeline.MinTermMatch = %v, want 0.5", cfg.Pipeline.MinTermMatch)
	}
	if cfg.Pipeline.ShortCutoff != 600 {
		t.Errorf("Pipeline.ShortCutoff = %d, want 600", cfg.Pipeline.ShortCutoff)
	}
	if cfg.Pipeline.RecencyWindow != 180*24*time.Hour {
		t.Errorf("Pipeline.RecencyWindow = %v, want 180 days", cfg.Pipeline.RecencyWindow)
	}
	if cfg.Cache.MaxEntries != 100 {
		t.Errorf("Cache.MaxEntries = %d, want 100", cfg.Cache.MaxEntries)
	}
	if cfg.YouTube.APIKey != "" {
		t.Errorf("YouTube.APIKey should be empty by default, got %q", cfg.YouTube.APIKey)
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS origins should be the wildcard")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:10000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:10000", cfg.Server.Addr())
	}
	if cfg.Pipeline.Weights.Sentiment != 0.20 {
		t.Errorf("Weights.Sentiment = %v, want 0.20", cfg.Pipeline.Weights.Sentiment)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8081")
	t.Setenv("YOUTUBE_API_KEY", "key-123")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("COMMENTS_TIMEOUT", "3s")
	t.Setenv("WEIGHT_POPULARITY", "0")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SOME_UNRELATED_VAR", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.YouTube.APIKey != "key-123" {
		t.Errorf("YouTube.APIKey = %q, want key-123", cfg.YouTube.APIKey)
	}
	if cfg.Pipeline.PageSize != 25 {
		t.Errorf("Pipeline.PageSize = %d, want 25", cfg.Pipeline.PageSize)
	}
	if cfg.Pipeline.CommentsTimeout != 3*time.Second {
		t.Errorf("Pipeline.CommentsTimeout = %v, want 3s", cfg.Pipeline.CommentsTimeout)
	}
	if cfg.Pipeline.Weights.Popularity != 0 {
		t.Errorf("Weights.Popularity = %v, want 0", cfg.Pipeline.Weights.Popularity)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "vidrank.yaml")
	content := `
server:
  port: 9090
pipeline:
  scan_limit: 80
  weights:
    title: 0.25
cache:
  max_entries: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// env wins over file
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Pipeline.ScanLimit != 80 {
		t.Errorf("Pipeline.ScanLimit = %d, want 80", cfg.Pipeline.ScanLimit)
	}
	if cfg.Pipeline.Weights.Title != 0.25 {
		t.Errorf("Weights.Title = %v, want 0.25", cfg.Pipeline.Weights.Title)
	}
	// untouched by the file
	if cfg.Pipeline.Weights.Engagement != 0.30 {
		t.Errorf("Weights.Engagement = %v, want 0.30", cfg.Pipeline.Weights.Engagement)
	}
	if cfg.Cache.MaxEntries != 5 {
		t.Errorf("Cache.MaxEntries = %d, want 5", cfg.Cache.MaxEntries)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolate(t)
	t.Setenv("SCAN_LIMIT", "0")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for SCAN_LIMIT=0")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"PORT", "server.port"},
		{"HTTP_PORT", "server.port"},
		{"YOUTUBE_API_KEY", "youtube.api_key"},
		{"WEIGHT_SENTIMENT", "pipeline.weights.sentiment"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CIRCUIT_BREAKER_TIMEOUT", "youtube.circuit_breaker.timeout"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
