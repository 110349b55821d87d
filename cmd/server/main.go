// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/vidrank/docs" // Import generated swagger docs
	"github.com/tomtom215/vidrank/internal/config"
	"github.com/tomtom215/vidrank/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Int("cache_max_entries", cfg.Cache.MaxEntries).
		Bool("events_enabled", cfg.Events.Enabled).
		Bool("transcripts_enabled", cfg.YouTube.TranscriptsEnabled).
		Msg("Starting vidrank")
	logStartupWarnings(cfg)

	app, err := newApplication(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx); err != nil {
		stop()
		logging.Error().Err(err).Msg("Application stopped with error")
		os.Exit(1)
	}
	logging.Info().Msg("Application stopped gracefully")
}
