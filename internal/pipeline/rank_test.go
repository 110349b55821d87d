// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/vidrank/internal/models"
)

func itemAt(id string, daysAgo int) *models.EnrichedItem {
	return &models.EnrichedItem{
		Candidate:  models.Candidate{ID: id},
		UploadDate: models.Date{Time: fixedNow.AddDate(0, 0, -daysAgo)},
	}
}

func ids(items []*models.EnrichedItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterByUpload(t *testing.T) {
	boundary := RecencyBoundary(fixedNow, DefaultRecencyWindow)
	items := []*models.EnrichedItem{itemAt("recent", 100), itemAt("old", 200), itemAt("edge", 180)}

	tests := []struct {
		filter models.UploadFilter
		want   []string
	}{
		{models.UploadLast6Months, []string{"recent", "edge"}},
		{models.UploadBefore6Months, []string{"old"}},
		{models.UploadAll, []string{"recent", "old", "edge"}},
		{models.UploadFilter("bogus"), []string{"recent", "old", "edge"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			if got := ids(FilterByUpload(items, tt.filter, boundary)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterByUpload(%s) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilterByUpload_OneHundredVersusTwoHundredDays(t *testing.T) {
	items := []*models.EnrichedItem{itemAt("d100", 100), itemAt("d200", 200)}
	got := FilterByUpload(items, models.UploadLast6Months, RecencyBoundary(fixedNow, 180*24*time.Hour))
	if !slices.Equal(ids(got), []string{"d100"}) {
		t.Errorf("got %v, want [d100]", ids(got))
	}
}

func TestSortItems(t *testing.T) {
	build := func() []*models.EnrichedItem {
		return []*models.EnrichedItem{
			{Candidate: models.Candidate{ID: "a"}, Views: 10, Likes: 5, Score: 0.9},
			{Candidate: models.Candidate{ID: "b"}, Views: 100, Likes: 1, Score: 0.1},
		}
	}
	tests := []struct {
		by   models.SortBy
		want []string
	}{
		{models.SortRelevance, []string{"a", "b"}},
		{models.SortMostViewed, []string{"b", "a"}},
		{models.SortMostLiked, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			items := build()
			SortItems(items, tt.by)
			if got := ids(items); !slices.Equal(got, tt.want) {
				t.Errorf("SortItems(%s) = %v, want %v", tt.by, got, tt.want)
			}
		})
	}
}

func TestSortItems_TieBreak(t *testing.T) {
	items := []*models.EnrichedItem{
		{Candidate: models.Candidate{ID: "c"}, Views: 5, Score: 1},
		{Candidate: models.Candidate{ID: "a"}, Views: 5, Score: 1},
		{Candidate: models.Candidate{ID: "b"}, Views: 9, Score: 1},
	}
	SortItems(items, models.SortRelevance)
	if got := ids(items); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("tie order = %v, want [b a c]", got)
	}
}

func TestPage(t *testing.T) {
	var items []*models.EnrichedItem
	for i := 0; i < 25; i++ {
		items = append(items, &models.EnrichedItem{})
	}
	if got := len(Page(items, 10)); got != 10 {
		t.Errorf("Page(25, 10) = %d items", got)
	}
	if got := len(Page(items[:3], 10)); got != 3 {
		t.Errorf("Page(3, 10) = %d items", got)
	}
	if got := len(Page(items, 0)); got != 25 {
		t.Errorf("Page(25, 0) = %d items", got)
	}
}

func TestBucket(t *testing.T) {
	items := []*models.EnrichedItem{
		{Candidate: models.Candidate{ID: "long1", DurationSeconds: 601}},
		{Candidate: models.Candidate{ID: "short1", DurationSeconds: 600}},
		{Candidate: models.Candidate{ID: "long2", DurationSeconds: 3600}},
		{Candidate: models.Candidate{ID: "short2", DurationSeconds: 0}},
	}
	short, long := Bucket(items, DefaultShortCutoff)
	if !slices.Equal(ids(short), []string{"short1", "short2"}) {
		t.Errorf("short = %v", ids(short))
	}
	if !slices.Equal(ids(long), []string{"long1", "long2"}) {
		t.Errorf("long = %v", ids(long))
	}
}
