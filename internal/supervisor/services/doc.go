// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package services provides suture.Service wrappers for vidrank components.

# Available Services

HTTP Server (HTTPServerService):
  - Binds the listener itself and reports bind failures from Serve
  - Ready closes once the port accepts connections
  - Graceful Shutdown bounded by HTTP_SHUTDOWN_TIMEOUT

Query Tracker (QueryTrackerService):
  - Delegates to events.QueryTracker, which consumes search.completed
  - A closed subscription is returned as an error so the tracker restarts

Event Bus (EventBusService):
  - Closes the watermill gochannel bus when the tree shuts down

Each wrapper implements fmt.Stringer so supervisor events name the service.
*/
package services
