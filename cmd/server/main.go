// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/animerec/docs" // Import generated swagger docs
	"github.com/tomtom215/animerec/internal/api"
	"github.com/tomtom215/animerec/internal/app"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())

	logging.Info().
		Str("catalog", cfg.Dataset.CatalogPath).
		Str("matrix", cfg.Dataset.MatrixPath).
		Str("popular", cfg.Dataset.PopularPath).
		Bool("enrichment", cfg.Enrichment.Enabled).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Animerec")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The dataset is required for every request, so load it before serving.
	components, err := app.Build(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation stack")
	}
	defer func() {
		if err := components.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing enrichment cache")
		}
	}()

	logging.Info().
		Int("titles", components.Catalog.Len()).
		Int("popular", len(components.Catalog.Popular())).
		Msg("Dataset loaded")

	if len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	// A nil *BreakerGateway must not become a non-nil interface.
	var breaker api.BreakerState
	if components.Breaker != nil {
		breaker = components.Breaker
	}

	handler := api.NewHandler(components.Service, components.Catalog, breaker)
	router := api.NewRouter(handler, api.NewChiMiddlewareConfig(cfg.Security.CORSOrigins))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bridge zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Enrichment.Enabled && cfg.Enrichment.WarmupInterval > 0 {
		tree.AddEnrichmentService(services.NewPopularWarmupService(components.Service, cfg.Enrichment.WarmupInterval))
		logging.Info().Dur("interval", cfg.Enrichment.WarmupInterval).Msg("Popular warmup service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one value and never closes the channel.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		cancel()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
