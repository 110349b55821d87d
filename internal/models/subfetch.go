// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package models

// SubFetchOp names one of the per-candidate network operations.
type SubFetchOp string

const (
	OpDetail     SubFetchOp = "detail"
	OpComments   SubFetchOp = "comments"
	OpTranscript SubFetchOp = "transcript"
)

// Reasons a sub-fetch result was replaced by its default.
const (
	ReasonFailed        = "failed"
	ReasonTimeout       = "timeout"
	ReasonEmpty         = "empty"
	ReasonNotConfigured = "not_configured"
	ReasonCircuitOpen   = "circuit_open"
)

// SubFetch is the outcome of one sub-fetch: either a fetched Value, or a
// documented default together with the reason the default was used.
type SubFetch[T any] struct {
	Op        SubFetchOp
	Value     T
	Err       error
	Defaulted bool
	Reason    string
}

// Fetched wraps a successful value.
func Fetched[T any](op SubFetchOp, v T) SubFetch[T] {
	return SubFetch[T]{Op: op, Value: v}
}

// Defaulted wraps a default value with the reason it was substituted.
func Defaulted[T any](op SubFetchOp, def T, reason string, err error) SubFetch[T] {
	return SubFetch[T]{Op: op, Value: def, Err: err, Defaulted: true, Reason: reason}
}
