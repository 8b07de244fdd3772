package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zoo-food-costs/internal/config"
	"zoo-food-costs/internal/database"
	"zoo-food-costs/internal/handler"
	"zoo-food-costs/internal/loader"
	"zoo-food-costs/internal/resource"
	"zoo-food-costs/internal/router"
	"zoo-food-costs/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger, os.Stdout)
	logger.Info().Msg("starting zoo food cost API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the resource source for the configured backend
	source, cleanup, err := newSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// Initialize loader and services
	dataLoader := loader.New(source, loader.Paths{
		Prices: cfg.Resources.PricesPath,
		Diet:   cfg.Resources.DietPath,
		Census: cfg.Resources.CensusPath,
	}, logger)
	costService := service.NewCostService(dataLoader, logger)

	// Initialize HTTP handlers
	foodCostHandler := handler.NewFoodCostHandler(costService, logger)

	// Initialize metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize router
	mux := router.New(foodCostHandler, registry, registry, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("backend", cfg.Resources.Backend).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSource builds the resource source for the configured backend. The returned
// cleanup releases any connections it holds.
func newSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (resource.Source, func(), error) {
	fileSource := resource.NewFileSource(logger)

	switch cfg.Resources.Backend {
	case config.BackendS3:
		s3Source, err := resource.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 source, falling back to local file system only")
			return fileSource, func() {}, nil
		}
		return resource.NewFallbackSource(s3Source, fileSource, cfg.S3.Prefix, logger), func() {}, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return resource.NewPostgresSource(pool, logger), pool.Close, nil

	default:
		logger.Info().Msg("using local file system for input resources")
		return fileSource, func() {}, nil
	}
}
