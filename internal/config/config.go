// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	YouTube  YouTubeConfig  `koanf:"youtube"`
	Pipeline PipelineConfig `koanf:"pipeline"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Events   EventsConfig   `koanf:"events"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	EnableSwagger   bool          `koanf:"enable_swagger"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// YouTubeConfig holds upstream video provider configuration
type YouTubeConfig struct {
	BaseURL           string               `koanf:"base_url"`
	APIBaseURL        string               `koanf:"api_base_url"`
	APIKey            string               `koanf:"api_key"`
	Language          string               `koanf:"language"`
	UserAgent         string               `koanf:"user_agent"`
	Timeout           time.Duration        `koanf:"timeout"`
	RequestsPerSecond float64              `koanf:"requests_per_second"`
	Burst             int                  `koanf:"burst"`
	MaxRetries        int                  `koanf:"max_retries"`
	RetryBaseDelay    time.Duration        `koanf:"retry_base_delay"`
	MaxBodyBytes      int64                `koanf:"max_body_bytes"`
	CircuitBreaker    CircuitBreakerConfig `koanf:"circuit_breaker"`

	// TranscriptsEnabled toggles the timed-text sub-fetch.
	TranscriptsEnabled bool `koanf:"transcripts_enabled"`
}

// CircuitBreakerConfig holds per-operation circuit breaker settings
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// PipelineConfig holds enrichment and ranking configuration
type PipelineConfig struct {
	ScanLimit          int           `koanf:"scan_limit"`
	PageSize           int           `koanf:"page_size"`
	Concurrency        int           `koanf:"concurrency"`
	DetailTimeout      time.Duration `koanf:"detail_timeout"`
	CommentsTimeout    time.Duration `koanf:"comments_timeout"`
	TranscriptTimeout  time.Duration `koanf:"transcript_timeout"`
	RunTimeout         time.Duration `koanf:"run_timeout"`
	CommentLimit       int           `koanf:"comment_limit"`
	TranscriptFraction float64       `koanf:"transcript_fraction"`
	MinTermMatch       float64       `koanf:"min_term_match"`

	// ShortCutoff is the inclusive duration in seconds for the short bucket.
	ShortCutoff   int           `koanf:"short_cutoff"`
	RecencyWindow time.Duration `koanf:"recency_window"`
	Weights       WeightsConfig `koanf:"weights"`
}

// WeightsConfig holds the scoring weights
type WeightsConfig struct {
	Title       float64 `koanf:"title"`
	Description float64 `koanf:"description"`
	Transcript  float64 `koanf:"transcript"`
	Sentiment   float64 `koanf:"sentiment"`
	Engagement  float64 `koanf:"engagement"`
	Popularity  float64 `koanf:"popularity"`
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	Enabled    bool `koanf:"enabled"`
	MaxEntries int  `koanf:"max_entries"`
}

// SecurityConfig holds CORS and request rate limiting configuration
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// EventsConfig holds the in-process event bus configuration
type EventsConfig struct {
	Enabled    bool `koanf:"enabled"`
	BufferSize int  `koanf:"buffer_size"`

	// PopularWindow is the sliding window for the popular query counter.
	PopularWindow  time.Duration `koanf:"popular_window"`
	PopularBuckets int           `koanf:"popular_buckets"`
	PopularMaxKeys int           `koanf:"popular_max_keys"`
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
