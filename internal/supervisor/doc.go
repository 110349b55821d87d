// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

/*
Package supervisor runs the long-lived services of vidrank under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("vidrank")
	├── EventsSupervisor ("events-layer")
	│   ├── EventBusService (closes the bus on shutdown)
	│   └── QueryTrackerService (if EVENTS_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's decaying failure counter. When
the counter passes FailureThreshold the layer backs off for FailureBackoff
before the next restart. Supervisor events are logged through sutureslog,
which main points at the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddEventService(services.NewQueryTrackerService(tracker))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Service Contract

Services implement suture.Service:
  - return nil: stopped cleanly, not restarted
  - return an error: crashed, restarted
  - ctx canceled: shutdown requested, return promptly

The pipeline, cache and provider client are plain values owned by main and
are not supervised; they have no goroutines of their own.

# Debugging Shutdown

UnstoppedServiceReport lists services still running after ShutdownTimeout.
*/
package supervisor
