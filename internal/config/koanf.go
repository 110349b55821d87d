// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/vidrank/config.yaml",
	"/etc/vidrank/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            10000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second, // a cold search waits on enrichment
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			EnableSwagger:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		YouTube: YouTubeConfig{
			BaseURL:           "https://www.youtube.com",
			APIBaseURL:        "https://www.googleapis.com/youtube/v3",
			APIKey:            "",
			Language:          "en",
			UserAgent:         "Mozilla/5.0 (compatible; vidrank/1.0)",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 20,
			Burst:             10,
			MaxRetries:        3,
			RetryBaseDelay:    time.Second,
			MaxBodyBytes:      8 << 20,
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
			TranscriptsEnabled: true,
		},
		Pipeline: PipelineConfig{
			ScanLimit:          50,
			PageSize:           10,
			Concurrency:        10,
			DetailTimeout:      10 * time.Second,
			CommentsTimeout:    8 * time.Second,
			TranscriptTimeout:  8 * time.Second,
			RunTimeout:         45 * time.Second,
			CommentLimit:       50,
			TranscriptFraction: 0.25,
			MinTermMatch:       0.5,
			ShortCutoff:        600,
			RecencyWindow:      180 * 24 * time.Hour,
			Weights: WeightsConfig{
				Title:       0.30,
				Description: 0.15,
				Transcript:  0.05,
				Sentiment:   0.20,
				Engagement:  0.30,
				Popularity:  1e-7,
			},
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 100,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			TrustedProxies:    []string{},
		},
		Events: EventsConfig{
			Enabled:        true,
			BufferSize:     256,
			PopularWindow:  time.Hour,
			PopularBuckets: 12,
			PopularMaxKeys: 1000,
		},
	}
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
// Precedence: ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none is found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"port":                  "server.port",
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"enable_swagger":        "server.enable_swagger",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// YouTube
	"youtube_base_url":              "youtube.base_url",
	"youtube_api_base_url":          "youtube.api_base_url",
	"youtube_api_key":               "youtube.api_key",
	"youtube_language":              "youtube.language",
	"youtube_user_agent":            "youtube.user_agent",
	"youtube_timeout":               "youtube.timeout",
	"youtube_requests_per_second":   "youtube.requests_per_second",
	"youtube_burst":                 "youtube.burst",
	"youtube_max_retries":           "youtube.max_retries",
	"youtube_retry_base_delay":      "youtube.retry_base_delay",
	"youtube_max_body_bytes":        "youtube.max_body_bytes",
	"youtube_transcripts_enabled":   "youtube.transcripts_enabled",
	"circuit_breaker_enabled":       "youtube.circuit_breaker.enabled",
	"circuit_breaker_max_requests":  "youtube.circuit_breaker.max_requests",
	"circuit_breaker_interval":      "youtube.circuit_breaker.interval",
	"circuit_breaker_timeout":       "youtube.circuit_breaker.timeout",
	"circuit_breaker_min_requests":  "youtube.circuit_breaker.min_requests",
	"circuit_breaker_failure_ratio": "youtube.circuit_breaker.failure_ratio",

	// Pipeline
	"scan_limit":          "pipeline.scan_limit",
	"page_size":           "pipeline.page_size",
	"enrich_concurrency":  "pipeline.concurrency",
	"detail_timeout":      "pipeline.detail_timeout",
	"comments_timeout":    "pipeline.comments_timeout",
	"transcript_timeout":  "pipeline.transcript_timeout",
	"search_run_timeout":  "pipeline.run_timeout",
	"comment_limit":       "pipeline.comment_limit",
	"transcript_fraction": "pipeline.transcript_fraction",
	"min_term_match":      "pipeline.min_term_match",
	"short_video_cutoff":  "pipeline.short_cutoff",
	"recency_window":      "pipeline.recency_window",
	"weight_title":        "pipeline.weights.title",
	"weight_description":  "pipeline.weights.description",
	"weight_transcript":   "pipeline.weights.transcript",
	"weight_sentiment":    "pipeline.weights.sentiment",
	"weight_engagement":   "pipeline.weights.engagement",
	"weight_popularity":   "pipeline.weights.popularity",

	// Cache
	"cache_enabled":     "cache.enabled",
	"cache_max_entries": "cache.max_entries",

	// Security
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Events
	"events_enabled":          "events.enabled",
	"events_buffer_size":      "events.buffer_size",
	"popular_queries_window":  "events.popular_window",
	"popular_queries_buckets": "events.popular_buckets",
	"popular_queries_max":     "events.popular_max_keys",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - PORT -> server.port
//   - YOUTUBE_API_KEY -> youtube.api_key
//   - WEIGHT_SENTIMENT -> pipeline.weights.sentiment
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables never
	// reach the config tree.
	return ""
}
