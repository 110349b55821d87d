// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

// Package main provides the vidrank HTTP server
//
// @title Vidrank API
// @version 1.0
// @description Video search enrichment and ranking. Candidates from the provider are enriched with views, likes, comment sentiment and a transcript sample, scored, filtered by upload date, sorted and paged.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 60 requests per minute per client IP.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_FAILED",
// @description     "message": "Query parameter is required",
// @description     "request_id": "..."
// @description   },
// @description   "meta": {"timestamp": "2026-01-31T12:34:56Z", "duration_ms": 0}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/vidrank
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Search
// @tag.description Ranked video search
//
// @tag.name Cache
// @tag.description Result cache inspection and maintenance
//
// @tag.name Stats
// @tag.description Popular queries and endpoint latency
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
