// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/vidrank/internal/extract"
	"github.com/tomtom215/vidrank/internal/logging"
	"github.com/tomtom215/vidrank/internal/metrics"
	"github.com/tomtom215/vidrank/internal/models"
)

// BreakerConfig tunes the per-operation circuits.
type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerConfig opens a circuit after 60% failures over at least 10
// requests and probes again two minutes later.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerClient wraps Client with one circuit breaker per operation.
//
// The breakers run on wall-clock time inside sony/gobreaker. Tests that need
// deterministic behavior should drive Client directly.
type CircuitBreakerClient struct {
	client   *Client
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

// NewCircuitBreakerClient wraps client.
func NewCircuitBreakerClient(client *Client, cfg BreakerConfig) *CircuitBreakerClient {
	def := DefaultBreakerConfig()
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = def.MinRequests
	}
	if cfg.FailureRatio <= 0 || cfg.FailureRatio > 1 {
		cfg.FailureRatio = def.FailureRatio
	}

	cbc := &CircuitBreakerClient{
		client:   client,
		breakers: make(map[string]*gobreaker.CircuitBreaker[any], 4),
	}
	for _, op := range []string{OpSearch, OpDetail, OpComments, OpTranscript} {
		cbc.breakers[op] = newBreaker("youtube-"+op, cfg)
	}
	return cbc
}

func newBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker[any] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: isSuccessful,
	})
}

// isSuccessful keeps answers that say nothing about provider health from
// counting against the circuit.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrNotConfigured) ||
		errors.Is(err, context.Canceled)
}

func (cbc *CircuitBreakerClient) execute(op string, fn func() (any, error)) (any, error) {
	cb := cbc.breakers[op]
	name := cb.Name()

	result, err := cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("youtube %s: %w: %w", op, models.ErrCircuitOpen, err)
		}
		if isSuccessful(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(cb.Counts().ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// State reports the current state of the circuit guarding op.
func (cbc *CircuitBreakerClient) State(op string) string {
	cb, ok := cbc.breakers[op]
	if !ok {
		return "unknown"
	}
	return stateToString(cb.State())
}

// States reports every circuit's state keyed by operation.
func (cbc *CircuitBreakerClient) States() map[string]string {
	out := make(map[string]string, len(cbc.breakers))
	for op, cb := range cbc.breakers {
		out[op] = stateToString(cb.State())
	}
	return out
}

// Search runs Client.Search behind the search circuit. A rejected call is
// reported as the provider being unavailable.
func (cbc *CircuitBreakerClient) Search(ctx context.Context, query string) ([]extract.Record, error) {
	records, err := castResult[[]extract.Record](cbc.execute(OpSearch, func() (any, error) {
		return cbc.client.Search(ctx, query)
	}))
	if err != nil && errors.Is(err, models.ErrCircuitOpen) {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstreamUnavailable, err)
	}
	return records, err
}

// Detail runs Client.Detail behind the detail circuit.
func (cbc *CircuitBreakerClient) Detail(ctx context.Context, id string) (extract.Record, error) {
	return castResult[extract.Record](cbc.execute(OpDetail, func() (any, error) {
		return cbc.client.Detail(ctx, id)
	}))
}

// Comments runs Client.Comments behind the comments circuit.
func (cbc *CircuitBreakerClient) Comments(ctx context.Context, id string, limit int) ([]models.Comment, error) {
	return castResult[[]models.Comment](cbc.execute(OpComments, func() (any, error) {
		return cbc.client.Comments(ctx, id, limit)
	}))
}

// Transcript runs Client.Transcript behind the transcript circuit.
func (cbc *CircuitBreakerClient) Transcript(ctx context.Context, id string) ([]models.TranscriptSegment, error) {
	return castResult[[]models.TranscriptSegment](cbc.execute(OpTranscript, func() (any, error) {
		return cbc.client.Transcript(ctx, id)
	}))
}
