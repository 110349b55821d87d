// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package api provides the HTTP surface of Vidrank using the chi router.

# Endpoints

Search:
  - GET /api/v1/search?query=&uploadDate=&sortBy=: ranked results in the
    standard APIResponse envelope
  - GET /search: legacy form returning the bare {short, long, items} object

Cache and statistics:
  - GET /api/v1/cache/stats: result cache counters
  - DELETE /api/v1/cache: drop every cached result
  - GET /api/v1/stats/queries?limit=: most searched queries in the recent window
  - GET /api/v1/stats/endpoints: per-route latency percentiles

Health and observability:
  - GET /api/v1/health, /api/v1/health/live, /api/v1/health/ready
  - GET /metrics: Prometheus exposition
  - GET /swagger/*: OpenAPI UI

# Error Mapping

	missing or blank query           400 VALIDATION_FAILED
	invalid uploadDate or sortBy     400 VALIDATION_FAILED (v1 only)
	provider unreachable or non-2xx  502 EXTERNAL_SERVICE_FAILED
	provider payload unparseable     500 UPSTREAM_UNPARSEABLE
	anything else                    500 INTERNAL_ERROR

The legacy route keeps its historical leniency: unknown uploadDate and
sortBy values fall back to "all" and "relevance" instead of failing.

# Middleware Stack

Global: request ID, real IP, panic recovery, CORS. The /api/v1 and legacy
search groups add per-IP rate limiting (go-chi/httprate), Prometheus
instrumentation, the performance monitor and gzip compression.
*/
package api
