// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/footprints/docs" // registers the swagger document
	"github.com/tomtom215/footprints/internal/api"
	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/logging"
	"github.com/tomtom215/footprints/internal/supervisor"
	"github.com/tomtom215/footprints/internal/supervisor/services"
)

// storeProbeInterval is how often the store monitor checks readability.
const storeProbeInterval = 30 * time.Second

func main() {
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
		Str("db_path", cfg.Database.Path).
		Str("table", cfg.Database.Table).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting footprints server")

	if err := seedFixtureIfRequested(&cfg.Database); err != nil {
		logging.Fatal().Err(err).Msg("Failed to seed fixture database")
	}

	store, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open building store")
	}

	handler, err := api.NewHandler(store, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs slog; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddStoreService(services.NewStoreMonitorService(store, storeProbeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Server stopped")
}

// seedFixtureIfRequested writes the development fixture when enabled and no
// database file exists at the configured path. An existing file is never
// overwritten.
func seedFixtureIfRequested(cfg *config.DatabaseConfig) error {
	if !cfg.SeedFixture {
		return nil
	}
	if _, err := os.Stat(cfg.Path); err == nil {
		logging.Info().Str("path", cfg.Path).Msg("Database file exists, skipping fixture seed")
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fixture := database.DefaultFixture()
	if err := database.SeedFixture(ctx, cfg.Path, cfg.Table, fixture); err != nil {
		return err
	}
	logging.Info().Str("path", cfg.Path).Int("buildings", len(fixture)).Msg("Seeded fixture database")
	return nil
}
