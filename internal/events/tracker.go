// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/vidrank/internal/cache"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
)

// Subscriber is the part of Bus the tracker needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// QueryTracker counts searches per normalized query over a sliding window.
// It implements suture.Service.
type QueryTracker struct {
	sub        Subscriber
	store      *cache.WindowStore
	serializer *Serializer
	logger     zerolog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewQueryTracker creates a tracker that feeds store from sub.
func NewQueryTracker(sub Subscriber, store *cache.WindowStore) *QueryTracker {
	return &QueryTracker{
		sub:        sub,
		store:      store,
		serializer: NewSerializer(),
		logger:     logging.WithComponent("events"),
		ready:      make(chan struct{}),
	}
}

// Serve subscribes and processes events until ctx is cancelled.
func (t *QueryTracker) Serve(ctx context.Context) error {
	messages, err := t.sub.Subscribe(ctx, TopicSearchCompleted)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", TopicSearchCompleted, err)
	}
	t.readyOnce.Do(func() { close(t.ready) })
	t.logger.Info().Str("topic", TopicSearchCompleted).Msg("Query tracker subscribed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				// Bus closed; let the supervisor decide whether to restart.
				return fmt.Errorf("%s subscription closed", TopicSearchCompleted)
			}
			t.handle(msg)
		}
	}
}

// handle acks every message. A malformed event would be redelivered forever
// by the in-process bus, so it is logged and dropped instead of nacked.
func (t *QueryTracker) handle(msg *message.Message) {
	defer msg.Ack()

	ev, err := t.serializer.Unmarshal(msg.Payload)
	if err != nil {
		metrics.EventsConsumed.WithLabelValues(TopicSearchCompleted, "invalid").Inc()
		t.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed search event")
		return
	}

	t.store.Add(NormalizeQuery(ev.Query), 1)
	metrics.EventsConsumed.WithLabelValues(TopicSearchCompleted, "ok").Inc()
}

// Ready is closed once the tracker has subscribed.
func (t *QueryTracker) Ready() <-chan struct{} {
	return t.ready
}

// Top returns the n most searched queries in the window.
func (t *QueryTracker) Top(n int) []cache.KeyCount {
	return t.store.Top(n)
}

// Count returns the windowed count for query.
func (t *QueryTracker) Count(query string) int64 {
	return t.store.Count(NormalizeQuery(query))
}

// String implements fmt.Stringer for suture logging.
func (t *QueryTracker) String() string {
	return "query-tracker"
}

// NormalizeQuery folds q the same way search cache keys do.
func NormalizeQuery(q string) string {
	return cache.NewSearchKey(q, "", "").Query
}
