// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - RequestID: reuse or generate X-Request-ID and store it in the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it
  - PerformanceMonitor: sliding window of latencies with percentile summaries

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape. The api
package adapts them to chi's func(http.Handler) http.Handler.

Metric labels use the chi route pattern, so PrometheusMetrics and
PerformanceMonitor must run inside a chi router to label requests usefully.
Outside one every request is labelled "unmatched".
*/
package middleware
