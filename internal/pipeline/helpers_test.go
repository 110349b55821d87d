// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/models"
)

// fixedNow anchors relative dates in tests.
var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func decode(t *testing.T, s string) extract.Record {
	t.Helper()
	var rec extract.Record
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		t.Fatalf("bad fixture: %v\n%s", err, s)
	}
	return rec
}

type video struct {
	id, title, desc, duration, published string
	views, likes                         string
	detailErr                            error
}

func searchRecord(t *testing.T, v video) extract.Record {
	t.Helper()
	return decode(t, fmt.Sprintf(`{
		"videoId": %q,
		"title": {"runs": [{"text": %q}]},
		"thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/%s/hq.jpg"}]},
		"lengthText": {"simpleText": %q},
		"ownerText": {"runs": [{"text": "Channel %s"}]},
		"publishedTimeText": {"simpleText": %q},
		"detailedMetadataSnippets": [{"snippetText": {"runs": [{"text": %q}]}}]
	}`, v.id, v.title, v.id, v.duration, v.id, v.published, v.desc))
}

func detailRecord(t *testing.T, views, likes string) extract.Record {
	t.Helper()
	return decode(t, fmt.Sprintf(`{"contents": {"twoColumnWatchNextResults": {"results": {"results": {"contents": [
		{"videoPrimaryInfoRenderer": {
			"viewCount": {"videoViewCountRenderer": {"viewCount": {"simpleText": %q}}},
			"videoActions": {"menuRenderer": {"topLevelButtons": [{"toggleButtonRenderer": {"defaultText": {"simpleText": %q}}}]}},
			"relativeDateText": {"simpleText": "2 days ago"}
		}},
		{"videoSecondaryInfoRenderer": {}}
	]}}}}}`, views, likes))
}

// fakeSource serves search and detail records from memory.
type fakeSource struct {
	t         *testing.T
	videos    []video
	searchErr error
	delay     time.Duration

	searches atomic.Int32
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (f *fakeSource) Search(ctx context.Context, _ string) ([]extract.Record, error) {
	f.searches.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]extract.Record, 0, len(f.videos))
	for _, v := range f.videos {
		out = append(out, searchRecord(f.t, v))
	}
	return out, nil
}

func (f *fakeSource) Detail(ctx context.Context, id string) (extract.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		m := f.maxSeen.Load()
		if n <= m || f.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for _, v := range f.videos {
		if v.id != id {
			continue
		}
		if v.detailErr != nil {
			return nil, v.detailErr
		}
		return detailRecord(f.t, v.views, v.likes), nil
	}
	return nil, models.ErrNotFound
}

type fakeComments struct {
	byID  map[string][]models.Comment
	err   error
	block bool
}

func (f *fakeComments) Comments(ctx context.Context, id string, _ int) ([]models.Comment, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

type fakeTranscripts struct {
	byID map[string][]models.TranscriptSegment
}

func (f *fakeTranscripts) Transcript(_ context.Context, id string) ([]models.TranscriptSegment, error) {
	segs, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return segs, nil
}

// wordClassifier scores the exact texts "good" and "bad".
type wordClassifier struct{}

func (wordClassifier) Classify(text string) float64 {
	switch text {
	case "good":
		return 0.6
	case "bad":
		return -0.6
	default:
		return 0
	}
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.SearchEvent
}

func (p *recordingPublisher) PublishSearch(_ context.Context, ev models.SearchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) all() []models.SearchEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.SearchEvent(nil), p.events...)
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
