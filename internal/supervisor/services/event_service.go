// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package services

import (
	"context"
	"fmt"
)

// Consumer is a long-running event consumer such as *events.QueryTracker.
type Consumer interface {
	Serve(ctx context.Context) error
}

// QueryTrackerService supervises the popular query tracker.
//
// The tracker already follows the suture.Service pattern; the wrapper names
// it for supervisor logs.
type QueryTrackerService struct {
	consumer Consumer
	name     string
}

// NewQueryTrackerService wraps consumer.
func NewQueryTrackerService(consumer Consumer) *QueryTrackerService {
	return &QueryTrackerService{
		consumer: consumer,
		name:     "query-tracker",
	}
}

// Serve implements suture.Service.
func (q *QueryTrackerService) Serve(ctx context.Context) error {
	return q.consumer.Serve(ctx)
}

// String implements fmt.Stringer for suture logging.
func (q *QueryTrackerService) String() string {
	return q.name
}

// Closer is the shutdown side of *events.Bus.
type Closer interface {
	Close() error
}

// EventBusService owns the event bus lifetime. It idles until shutdown and
// then closes the bus, which ends every subscription.
type EventBusService struct {
	bus  Closer
	name string
}

// NewEventBusService wraps bus.
func NewEventBusService(bus Closer) *EventBusService {
	return &EventBusService{
		bus:  bus,
		name: "event-bus",
	}
}

// Serve implements suture.Service.
func (e *EventBusService) Serve(ctx context.Context) error {
	<-ctx.Done()
	if err := e.bus.Close(); err != nil {
		return fmt.Errorf("close event bus: %w", err)
	}
	return ctx.Err()
}

// String implements fmt.Stringer for suture logging.
func (e *EventBusService) String() string {
	return e.name
}
