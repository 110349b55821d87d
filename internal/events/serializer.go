// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package events

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vidrank/internal/models"
)

// ErrInvalidEvent is returned for events missing required fields.
var ErrInvalidEvent = errors.New("invalid search event")

// Serializer handles event encoding and decoding for bus messages.
type Serializer struct{}

// NewSerializer creates a new serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Marshal validates ev and converts it to JSON.
func (s *Serializer) Marshal(ev *models.SearchEvent) ([]byte, error) {
	if err := Validate(ev); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal converts JSON to an event and validates it.
func (s *Serializer) Unmarshal(data []byte) (*models.SearchEvent, error) {
	var ev models.SearchEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := Validate(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Validate checks the fields every consumer relies on.
func Validate(ev *models.SearchEvent) error {
	switch {
	case ev == nil:
		return ErrInvalidEvent
	case ev.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case strings.TrimSpace(ev.Query) == "":
		return fmt.Errorf("%w: query is required", ErrInvalidEvent)
	case ev.OccurredAt.IsZero():
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidEvent)
	}
	return nil
}
