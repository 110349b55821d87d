// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/events"
	"github.com/tomtom215/vidrank/internal/models"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestEventServices_Interface(t *testing.T) {
	var _ suture.Service = (*QueryTrackerService)(nil)
	var _ suture.Service = (*EventBusService)(nil)
	var _ Consumer = (*events.QueryTracker)(nil)
	var _ Closer = (*events.Bus)(nil)
}

func TestEventBusService_ClosesOnShutdown(t *testing.T) {
	closed := make(chan struct{})
	svc := NewEventBusService(closerFunc(func() error {
		close(closed)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-closed:
		t.Fatal("bus closed before shutdown")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	select {
	case <-closed:
	default:
		t.Error("bus was not closed")
	}
	if svc.String() != "event-bus" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestEventBusService_CloseError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewEventBusService(closerFunc(func() error { return boom }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Serve(ctx); !errors.Is(err, boom) {
		t.Errorf("Serve() = %v, want %v", err, boom)
	}
}

func TestQueryTrackerService_CountsPublishedSearches(t *testing.T) {
	bus := events.NewBus(events.Config{BufferSize: 16})
	tracker := events.NewQueryTracker(bus, cache.NewWindowStore(time.Minute, 6, 100))

	sup := suture.New("test-events", suture.Spec{Timeout: time.Second})
	svc := NewQueryTrackerService(tracker)
	sup.Add(svc)
	sup.Add(NewEventBusService(bus))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)
	defer func() {
		cancel()
		<-errCh
	}()

	select {
	case <-tracker.Ready():
	case <-time.After(time.Second):
		t.Fatal("tracker did not subscribe")
	}

	for i := 0; i < 3; i++ {
		ev := models.SearchEvent{
			EventID:      uuid.NewString(),
			Query:        "Go Tutorial",
			UploadFilter: models.UploadAll,
			SortBy:       models.SortRelevance,
			OccurredAt:   time.Now().UTC(),
		}
		if err := bus.PublishSearch(ctx, ev); err != nil {
			t.Fatalf("PublishSearch() error = %v", err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for tracker.Count("go tutorial") < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := tracker.Count("go tutorial"); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if svc.String() != "query-tracker" {
		t.Errorf("String() = %q", svc.String())
	}
}
