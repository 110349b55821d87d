// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/models"
)

// TopicSearchCompleted receives one message per answered search.
const TopicSearchCompleted = "search.completed"

// Metadata keys set on published messages.
const (
	MetadataRequestID = "request_id"
	MetadataCached    = "cached"
)

// Config tunes the in-process bus.
type Config struct {
	// BufferSize is the per-subscriber channel buffer.
	BufferSize int64
}

// DefaultConfig returns the production bus settings.
func DefaultConfig() Config {
	return Config{BufferSize: 256}
}

// Bus publishes and subscribes to search events.
type Bus struct {
	pubsub     *gochannel.GoChannel
	serializer *Serializer
	logger     watermill.LoggerAdapter
}

// NewBus creates a gochannel-backed bus that logs through zerolog.
func NewBus(cfg Config) *Bus {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	logger := watermill.NewSlogLogger(logging.NewSlogLogger("events"))
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            cfg.BufferSize,
			Persistent:                     false,
			BlockPublishUntilSubscriberAck: false,
		}, logger),
		serializer: NewSerializer(),
		logger:     logger,
	}
}

// PublishSearch publishes ev on TopicSearchCompleted.
func (b *Bus) PublishSearch(ctx context.Context, ev models.SearchEvent) error {
	payload, err := b.serializer.Marshal(&ev)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(TopicSearchCompleted, "invalid").Inc()
		return err
	}

	msg := message.NewMessage(ev.EventID, payload)
	msg.SetContext(context.WithoutCancel(ctx))
	if ev.RequestID != "" {
		msg.Metadata.Set(MetadataRequestID, ev.RequestID)
	}
	if ev.Cached {
		msg.Metadata.Set(MetadataCached, "true")
	}

	if err := b.pubsub.Publish(TopicSearchCompleted, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(TopicSearchCompleted, "error").Inc()
		return fmt.Errorf("publish %s: %w", TopicSearchCompleted, err)
	}
	metrics.EventsPublished.WithLabelValues(TopicSearchCompleted, "ok").Inc()
	return nil
}

// Subscribe returns the message channel for topic. The channel closes when
// ctx ends or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
