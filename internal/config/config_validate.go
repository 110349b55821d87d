// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateYouTube(); err != nil {
		return err
	}

	if err := c.validatePipeline(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if err := validateHTTPURL(c.YouTube.BaseURL, "YOUTUBE_BASE_URL", false); err != nil {
		return err
	}
	if err := validateHTTPURL(c.YouTube.APIBaseURL, "YOUTUBE_API_BASE_URL", true); err != nil {
		return err
	}
	if c.YouTube.Timeout <= 0 {
		return fmt.Errorf("YOUTUBE_TIMEOUT must be positive")
	}
	if c.YouTube.RequestsPerSecond <= 0 {
		return fmt.Errorf("YOUTUBE_REQUESTS_PER_SECOND must be positive")
	}
	if c.YouTube.Burst < 1 {
		return fmt.Errorf("YOUTUBE_BURST must be at least 1")
	}
	if c.YouTube.MaxRetries < 0 || c.YouTube.MaxRetries > 10 {
		return fmt.Errorf("YOUTUBE_MAX_RETRIES must be between 0 and 10")
	}
	return c.validateCircuitBreaker()
}

func (c *Config) validateCircuitBreaker() error {
	cb := c.YouTube.CircuitBreaker
	if !cb.Enabled {
		return nil
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("CIRCUIT_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// Pipeline bounds
const (
	minScanLimit = 1
	maxScanLimit = 200
	minPageSize  = 1
	maxPageSize  = 50
	maxWorkers   = 64
)

func (c *Config) validatePipeline() error {
	p := c.Pipeline
	if p.ScanLimit < minScanLimit || p.ScanLimit > maxScanLimit {
		return fmt.Errorf("SCAN_LIMIT must be between %d and %d", minScanLimit, maxScanLimit)
	}
	if p.PageSize < minPageSize || p.PageSize > maxPageSize {
		return fmt.Errorf("PAGE_SIZE must be between %d and %d", minPageSize, maxPageSize)
	}
	if p.Concurrency < 1 || p.Concurrency > maxWorkers {
		return fmt.Errorf("ENRICH_CONCURRENCY must be between 1 and %d", maxWorkers)
	}
	if err := requirePositive(map[string]time.Duration{
		"DETAIL_TIMEOUT":     p.DetailTimeout,
		"COMMENTS_TIMEOUT":   p.CommentsTimeout,
		"TRANSCRIPT_TIMEOUT": p.TranscriptTimeout,
		"SEARCH_RUN_TIMEOUT": p.RunTimeout,
		"RECENCY_WINDOW":     p.RecencyWindow,
	}); err != nil {
		return err
	}
	if p.CommentLimit < 0 || p.CommentLimit > 100 {
		return fmt.Errorf("COMMENT_LIMIT must be between 0 and 100")
	}
	if p.TranscriptFraction <= 0 || p.TranscriptFraction > 1 {
		return fmt.Errorf("TRANSCRIPT_FRACTION must be in (0, 1]")
	}
	if p.MinTermMatch < 0 || p.MinTermMatch > 1 {
		return fmt.Errorf("MIN_TERM_MATCH must be between 0 and 1")
	}
	if p.ShortCutoff < 0 {
		return fmt.Errorf("SHORT_VIDEO_CUTOFF must not be negative")
	}
	return c.validateWeights()
}

// validateWeights rejects negative weights. The bounded components must sum
// to at most 1 so the relevance part of a score stays within [0, 1].
func (c *Config) validateWeights() error {
	w := c.Pipeline.Weights
	named := []struct {
		env string
		val float64
	}{
		{"WEIGHT_TITLE", w.Title},
		{"WEIGHT_DESCRIPTION", w.Description},
		{"WEIGHT_TRANSCRIPT", w.Transcript},
		{"WEIGHT_SENTIMENT", w.Sentiment},
		{"WEIGHT_ENGAGEMENT", w.Engagement},
		{"WEIGHT_POPULARITY", w.Popularity},
	}
	for _, n := range named {
		if n.val < 0 {
			return fmt.Errorf("%s must not be negative", n.env)
		}
	}
	if sum := w.Title + w.Description + w.Transcript + w.Sentiment + w.Engagement; sum > 1+1e-9 {
		return fmt.Errorf("scoring weights (excluding WEIGHT_POPULARITY) must sum to at most 1, got %.4f", sum)
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.MaxEntries < 1 || c.Cache.MaxEntries > 100000 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be between 1 and 100000")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must not be negative")
	}
	if c.Events.PopularWindow <= 0 {
		return fmt.Errorf("POPULAR_QUERIES_WINDOW must be positive")
	}
	if c.Events.PopularBuckets < 1 {
		return fmt.Errorf("POPULAR_QUERIES_BUCKETS must be at least 1")
	}
	if c.Events.PopularMaxKeys < 1 {
		return fmt.Errorf("POPULAR_QUERIES_MAX must be at least 1")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL checks scheme and host. Paths are rejected unless allowPath is set.
func validateHTTPURL(rawURL, fieldName string, allowPath bool) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if !allowPath && parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// requirePositive reports the first non-positive duration by env name.
func requirePositive(durations map[string]time.Duration) error {
	for _, name := range slices.Sorted(maps.Keys(durations)) {
		if durations[name] <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
