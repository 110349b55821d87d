// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"cmp"
	"slices"
	"time"

	"github.com/tomtom215/vidrank/internal/models"
)

// DefaultRecencyWindow separates recent uploads from older ones.
const DefaultRecencyWindow = 180 * 24 * time.Hour

// DefaultShortCutoff is the longest duration, in seconds, of a short video.
const DefaultShortCutoff = 600

// DefaultPageSize is the number of items returned.
const DefaultPageSize = 10

// RecencyBoundary returns the single cutoff used for one request.
func RecencyBoundary(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}

// FilterByUpload keeps items on or after boundary for UploadLast6Months,
// strictly before it for UploadBefore6Months, and everything otherwise.
func FilterByUpload(items []*models.EnrichedItem, filter models.UploadFilter, boundary time.Time) []*models.EnrichedItem {
	var keep func(t time.Time) bool
	switch filter {
	case models.UploadLast6Months:
		keep = func(t time.Time) bool { return !t.Before(boundary) }
	case models.UploadBefore6Months:
		keep = func(t time.Time) bool { return t.Before(boundary) }
	default:
		return items
	}

	out := make([]*models.EnrichedItem, 0, len(items))
	for _, item := range items {
		if keep(item.UploadDate.Time) {
			out = append(out, item)
		}
	}
	return out
}

// SortItems orders items in place, descending by the selected metric. Ties
// fall back to views and then ID so the order is deterministic.
func SortItems(items []*models.EnrichedItem, by models.SortBy) {
	primary := func(a, b *models.EnrichedItem) int { return cmp.Compare(b.Score, a.Score) }
	switch by {
	case models.SortMostViewed:
		primary = func(a, b *models.EnrichedItem) int { return cmp.Compare(b.Views, a.Views) }
	case models.SortMostLiked:
		primary = func(a, b *models.EnrichedItem) int { return cmp.Compare(b.Likes, a.Likes) }
	}

	slices.SortStableFunc(items, func(a, b *models.EnrichedItem) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Page truncates items to size. A non-positive size returns items unchanged.
func Page(items []*models.EnrichedItem, size int) []*models.EnrichedItem {
	if size <= 0 || len(items) <= size {
		return items
	}
	return items[:size]
}

// Bucket splits an ordered list into short and long videos, keeping order.
func Bucket(items []*models.EnrichedItem, cutoffSeconds int) (short, long []*models.EnrichedItem) {
	short = make([]*models.EnrichedItem, 0, len(items))
	long = make([]*models.EnrichedItem, 0, len(items))
	for _, item := range items {
		if item.IsShort(cutoffSeconds) {
			short = append(short, item)
		} else {
			long = append(long, item)
		}
	}
	return short, long
}
