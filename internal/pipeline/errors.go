// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"errors"

	"github.com/tomtom215/vidrank/internal/models"
)

var (
	// ErrInvalidQuery is returned before any work when the query is blank.
	ErrInvalidQuery = errors.New("query parameter is required")

	// ErrUpstreamUnavailable and ErrUpstreamUnparseable are the two
	// request-fatal search failures.
	ErrUpstreamUnavailable = models.ErrUpstreamUnavailable
	ErrUpstreamUnparseable = models.ErrUpstreamUnparseable

	// ErrNotViable marks a candidate dropped during enrichment.
	ErrNotViable = errors.New("candidate not viable")
)

// Reasons a candidate leaves the pipeline before ranking.
const (
	DropMalformed     = "malformed"
	DropIrrelevant    = "irrelevant"
	DropDetailFailed  = "detail_failed"
	DropDetailMissing = "detail_missing"
	DropZeroViews     = "zero_views"
	DropCancelled     = "cancelled"
)

// DropError carries the reason a candidate was dropped. It matches
// ErrNotViable under errors.Is.
type DropError struct {
	ID     string
	Reason string
	Err    error
}

func (e *DropError) Error() string {
	if e.Err != nil {
		return "candidate " + e.ID + " dropped (" + e.Reason + "): " + e.Err.Error()
	}
	return "candidate " + e.ID + " dropped (" + e.Reason + ")"
}

func (e *DropError) Is(target error) bool { return target == ErrNotViable }

func (e *DropError) Unwrap() error { return e.Err }
