package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"supergo/internal/app"
	"supergo/internal/config"
	"supergo/internal/database"
	"supergo/internal/handler"
	"supergo/internal/persist"
	"supergo/internal/router"
	"supergo/internal/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environments configure through the process
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting supergo API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot persistence backend
	var snapshots persist.Store
	switch cfg.Snapshot.Backend {
	case config.SnapshotPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		snapshots, err = persist.NewPostgresStore(ctx, pool, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize postgres snapshot store: %w", err)
		}
	case config.SnapshotMemory:
		snapshots = persist.NewMemoryStore()
	default:
		snapshots, err = persist.NewFileStore(cfg.Snapshot.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize file snapshot store: %w", err)
		}
	}

	// Initial-data source
	var data source.Source
	switch cfg.Source.Backend {
	case config.SourceFile:
		data = source.NewFileSource(cfg.Source.Path, logger)
	case config.SourceS3:
		data, err = source.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 source: %w", err)
		}
	default:
		data = source.NewSeedSource(cfg.Source.Delay, logger)
	}

	store := app.NewStore(snapshots, data, app.Config{
		StorageKey:     cfg.Snapshot.Key,
		LoadAttempts:   cfg.Source.LoadAttempts,
		LoadRetryDelay: cfg.Source.LoadRetryDelay,
	}, logger)

	// A failed load leaves the store in its error state; the server still
	// comes up so the health endpoint and later retries remain reachable.
	if err := store.Load(ctx); err != nil {
		logger.Error().Err(err).Msg("initial state load failed, serving with error state")
	}

	catalogHandler := handler.NewCatalogHandler(store, logger)
	cartHandler := handler.NewCartHandler(store, logger)
	checkoutHandler := handler.NewCheckoutHandler(store, logger)
	sessionHandler := handler.NewSessionHandler(store, logger)
	adminHandler := handler.NewAdminHandler(store, logger)

	mux := router.New(
		catalogHandler,
		cartHandler,
		checkoutHandler,
		sessionHandler,
		adminHandler,
		cfg.Auth.APIKey,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
