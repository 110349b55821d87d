// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package main is the entry point for the vidrank server.

vidrank answers a search query by fetching candidate videos from YouTube,
dropping candidates that match fewer than half of the query terms, enriching
the rest with views, likes, comment sentiment and a transcript sample,
scoring them, and returning one filtered and sorted page split into short
and long buckets. Results are kept in a FIFO cache of the last 100 distinct
(query, uploadDate, sortBy) combinations.

# Application Architecture

	RootSupervisor ("vidrank")
	├── EventsSupervisor ("events-layer")
	│   ├── EventBusService (watermill gochannel)
	│   └── QueryTrackerService (popular queries)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON or console output
 3. Provider client: rate limited YouTube client behind per-operation circuit breakers
 4. Result cache: FIFO, CACHE_MAX_ENTRIES entries
 5. Event bus and query tracker (EVENTS_ENABLED)
 6. Search pipeline: normalizer, enricher, scorer
 7. HTTP router: chi with CORS, rate limiting, metrics and compression
 8. Supervisor tree: suture v4, stops on SIGINT or SIGTERM

# Configuration

	# Server
	PORT=10000                   # HTTP listen port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Provider
	YOUTUBE_API_KEY=<key>        # enables the comments sub-fetch
	YOUTUBE_TRANSCRIPTS_ENABLED=true

	# Pipeline
	SCAN_LIMIT=50
	PAGE_SIZE=10
	ENRICH_CONCURRENCY=10
	SHORT_VIDEO_CUTOFF=600       # seconds, inclusive

	# Cache
	CACHE_MAX_ENTRIES=100

See internal/config for the full list.

# Endpoints

	GET    /search                   bare {short, long, items} body
	GET    /api/v1/search            enveloped ranked result
	GET    /api/v1/cache/stats
	DELETE /api/v1/cache
	GET    /api/v1/stats/queries
	GET    /api/v1/stats/endpoints
	GET    /api/v1/health[/live|/ready]
	GET    /metrics
	GET    /swagger/*                when ENABLE_SWAGGER=true

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT, the event bus is
closed and services still running afterwards are logged.
*/
package main
