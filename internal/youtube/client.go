// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/models"
)

// Operation names used for metrics, logs and circuit breakers.
const (
	OpSearch     = "search"
	OpDetail     = "detail"
	OpComments   = "comments"
	OpTranscript = "transcript"
)

// ErrRateLimited is returned when 429 responses persist past MaxRetries.
var ErrRateLimited = errors.New("youtube: rate limit exceeded")

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("youtube %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Config holds client settings.
type Config struct {
	BaseURL           string
	APIBaseURL        string
	APIKey            string
	Language          string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxRetries        int
	RetryBaseDelay    time.Duration
	MaxBodyBytes      int64
}

// DefaultConfig returns settings for the public YouTube endpoints.
func DefaultConfig() Config {
	return Config{
		BaseURL:           "https://www.youtube.com",
		APIBaseURL:        "https://www.googleapis.com/youtube/v3",
		Language:          "en",
		UserAgent:         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		Timeout:           10 * time.Second,
		RequestsPerSecond: 20,
		Burst:             10,
		MaxRetries:        3,
		RetryBaseDelay:    time.Second,
		MaxBodyBytes:      8 << 20,
	}
}

// Client fetches pages and API resources from YouTube.
type Client struct {
	baseURL        string
	apiBaseURL     string
	apiKey         string
	language       string
	userAgent      string
	httpClient     *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	maxBodyBytes   int64
	logger         zerolog.Logger
}

// NewClient builds a Client. Zero fields in cfg take DefaultConfig values,
// except APIKey which stays empty and disables Comments.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = def.APIBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = def.RetryBaseDelay
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiBaseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:         cfg.APIKey,
		language:       cfg.Language,
		userAgent:      cfg.UserAgent,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		maxBodyBytes:   cfg.MaxBodyBytes,
		logger:         logging.WithComponent("youtube"),
	}
}

// get performs a GET with rate limiting and 429 retries and returns the body
// of a 2xx response. 404 maps to models.ErrNotFound.
func (c *Client) get(ctx context.Context, op, reqURL string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("youtube %s: wait for rate limiter: %w", op, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("youtube %s: create request: %w", op, err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept-Language", c.language)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.RecordProviderRequest(op, "error", time.Since(start))
			return nil, fmt.Errorf("youtube %s: request failed: %w", op, err)
		}
		metrics.RecordProviderRequest(op, strconv.Itoa(resp.StatusCode), time.Since(start))

		if resp.StatusCode != http.StatusTooManyRequests {
			return c.readBody(op, resp)
		}

		_ = resp.Body.Close()
		metrics.ProviderRateLimited.WithLabelValues(op).Inc()
		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("youtube %s: %w after %d retries", op, ErrRateLimited, c.maxRetries)
		}

		delay := retryDelay(resp.Header.Get("Retry-After"), c.retryBaseDelay, attempt)
		c.logger.Warn().
			Str("op", op).
			Dur("retry_delay", delay).
			Int("attempt", attempt+1).
			Int("max_retries", c.maxRetries).
			Msg("Provider rate limited (HTTP 429), retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) readBody(op string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("youtube %s: read body: %w", op, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("youtube %s: %w", op, models.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: snippet}
	}
	return body, nil
}

// retryDelay prefers a Retry-After value in seconds or HTTP-date form and
// otherwise doubles base for each attempt.
func retryDelay(retryAfter string, base time.Duration, attempt int) time.Duration {
	if retryAfter != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		if at, err := http.ParseTime(retryAfter); err == nil {
			if d := time.Until(at); d > 0 {
				return d
			}
			return 0
		}
	}
	return base * time.Duration(1<<uint(attempt))
}
