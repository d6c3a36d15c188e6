// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package main is the entry point for the PetMatch server.
//
// PetMatch is a self-hosted pet adoption service: shelters publish animal
// listings, adopters browse them, and a per-user recommendation engine ranks
// the remaining animals by learned attribute preferences.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, YAML file, and
//     environment variables (Koanf v2)
//  2. Store: BadgerDB for animal listings and interaction histories
//  3. Recommendation engine: vectorizer, scoring engine, and per-user
//     coordinator, with a circuit breaker in front of the store
//  4. HTTP server: REST API under /api/v1 plus Prometheus /metrics
//  5. Supervisor tree: suture-managed lifecycle for the HTTP server and
//     badger value-log garbage collection
//
// # Configuration
//
// Highest priority wins:
//   - Environment variables (HTTP_PORT, STORE_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// new connections, waits for in-flight requests up to the configured shutdown
// timeout, then closes the store.
//
// # Example Usage
//
// Development with an in-memory store:
//
//	export STORE_IN_MEMORY=true
//	export LOG_LEVEL=debug
//	./petmatch
//
// Production:
//
//	export STORE_PATH=/data/petmatch
//	export HTTP_PORT=8470
//	export CORS_ORIGINS=https://petmatch.example.com
//	./petmatch
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/petmatch/petmatch/internal/api"
	"github.com/petmatch/petmatch/internal/config"
	"github.com/petmatch/petmatch/internal/logging"
	"github.com/petmatch/petmatch/internal/metrics"
	"github.com/petmatch/petmatch/internal/recommend"
	"github.com/petmatch/petmatch/internal/store"
	"github.com/petmatch/petmatch/internal/supervisor"
	"github.com/petmatch/petmatch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging)

	logging.Info().
		Str("store_path", cfg.Store.Path).
		Bool("in_memory", cfg.Store.InMemory).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Open the badger store.
	db, err := store.Open(store.Options{
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	animals, err := store.NewAnimalStore(db, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize animal store")
	}
	defer func() {
		if err := animals.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing animal store")
		}
	}()
	histories := store.NewHistoryStore(db, logging.Logger())
	logging.Info().Msg("Store initialized successfully")

	// Circuit breaker in front of the animal store. State changes feed the
	// breaker gauge.
	provider := recommend.NewBreakerProvider(animals, cfg.Recommend.Breaker, logging.Logger(),
		func(name, from, to string) {
			metrics.SetBreakerState(name, to)
		})

	vectorizer := recommend.NewVectorizer(cfg.Recommend.Bounds())
	engine := recommend.NewEngine(cfg.Recommend.Weights())
	coordinator := recommend.NewCoordinator(provider, histories, vectorizer, engine, logging.Logger())
	logging.Info().
		Float64("default_weight", cfg.Recommend.DefaultWeight).
		Int("weight_overrides", len(cfg.Recommend.WeightOverrides)).
		Msg("Recommendation engine initialized")

	ready := func(ctx context.Context) error {
		if db.IsClosed() {
			return errors.New("store is closed")
		}
		return nil
	}

	handler := api.NewHandler(animals, coordinator, ready, logging.Logger())
	router := api.NewRouter(handler, cfg.API)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Context for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)

	tree.AddStorageService(store.NewGCService(db, cfg.Store.GCInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Signal handling.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor finishes.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
