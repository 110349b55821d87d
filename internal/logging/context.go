// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	searchIDKey  contextKey = "search_id"
)

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateSearchID returns a short ID used to correlate the log lines of one
// pipeline run across its enrichment goroutines.
func GenerateSearchID() string {
	return uuid.New().String()[:8]
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func ContextWithSearchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, searchIDKey, id)
}

func SearchIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(searchIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger enriched with the request and search IDs found in ctx.
//
//	logging.Ctx(ctx).Info().Int("items", n).Msg("search completed")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// CtxWith is Ctx for callers that want to add more fields before building the logger.
func CtxWith(ctx context.Context) zerolog.Context {
	lc := With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := SearchIDFromContext(ctx); id != "" {
		lc = lc.Str("search_id", id)
	}
	return lc
}
