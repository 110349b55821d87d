// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package events carries search notifications over an in-process Watermill
bus.

Every answered search is published on TopicSearchCompleted as a JSON
models.SearchEvent. QueryTracker subscribes to that topic and keeps sliding
window counts of normalized queries in a cache.WindowStore, which backs the
popular-queries endpoint.

The bus is a gochannel pub/sub: delivery is at-most-once and nothing
survives a restart. Events published before the tracker subscribes are lost.

Usage:

	bus := events.NewBus(events.DefaultConfig())
	tracker := events.NewQueryTracker(bus, cache.NewWindowStore(time.Hour, 60, 10000))
	supervisor.AddMessagingService(tracker)
	svc, _ := pipeline.NewService(cfg, pipeline.Deps{Publisher: bus, ...})
*/
package events
