// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package config provides centralized configuration management for Vidrank.

Configuration is layered with Koanf v2. Later sources override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH or the first of DefaultConfigPaths)
 3. Environment variables

# Configuration Structure

  - ServerConfig: HTTP listener and timeouts
  - LoggingConfig: zerolog level, format and caller reporting
  - YouTubeConfig: upstream endpoints, API key, rate limiting and circuit breaker
  - PipelineConfig: scan limit, page size, enrichment bounds and scoring weights
  - CacheConfig: FIFO result cache capacity
  - SecurityConfig: CORS origins and per-client rate limiting
  - EventsConfig: in-process search event bus and popular query window

# Environment Variables

Server:
  - PORT or HTTP_PORT: listen port (default: 10000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

YouTube:
  - YOUTUBE_API_KEY: Data API key, enables comment sentiment (default: empty)
  - YOUTUBE_BASE_URL, YOUTUBE_API_BASE_URL, YOUTUBE_LANGUAGE
  - YOUTUBE_TIMEOUT, YOUTUBE_REQUESTS_PER_SECOND, YOUTUBE_BURST, YOUTUBE_MAX_RETRIES
  - CIRCUIT_BREAKER_ENABLED, CIRCUIT_BREAKER_TIMEOUT, CIRCUIT_BREAKER_FAILURE_RATIO

Pipeline:
  - SCAN_LIMIT (default: 50), PAGE_SIZE (default: 10)
  - ENRICH_CONCURRENCY (default: 10)
  - DETAIL_TIMEOUT, COMMENTS_TIMEOUT, TRANSCRIPT_TIMEOUT, SEARCH_RUN_TIMEOUT
  - MIN_TERM_MATCH (default: 0.5), SHORT_VIDEO_CUTOFF (default: 600 seconds)
  - WEIGHT_TITLE, WEIGHT_DESCRIPTION, WEIGHT_TRANSCRIPT, WEIGHT_SENTIMENT,
    WEIGHT_ENGAGEMENT, WEIGHT_POPULARITY

Cache:
  - CACHE_ENABLED (default: true), CACHE_MAX_ENTRIES (default: 100)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("listening on %s\n", cfg.Server.Addr())

# Thread Safety

Config values are read-only after Load returns and are safe for concurrent reads.
*/
package config
