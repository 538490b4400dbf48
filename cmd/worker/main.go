// Package main provides the entrypoint for the plan cache warmer. It plans
// the busiest corridors on a fixed interval so user queries are answered from
// the shared cache.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/alextransit/alextransit/internal/api/middleware"
	"github.com/alextransit/alextransit/internal/app"
	"github.com/alextransit/alextransit/internal/config"
	"github.com/alextransit/alextransit/internal/telemetry"
	"github.com/alextransit/alextransit/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "alextransit-worker"

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := cfg.NewLogger(serviceName, Version)
	log.Info().Str("build_time", BuildTime).Msg("starting cache warmer")

	if cfg.RedisAddress == "" {
		log.Warn().Msg("REDIS_ADDRESS not set, warmed plans stay in this process only")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.OTelEnabled,
		SampleRatio:    cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize provider metrics")
	}

	// The memory file is only read here, so warmed plans carry the user's
	// stored preferences. Changes made later reach the warmer on restart.
	components, err := app.Build(ctx, cfg, app.Options{Metrics: providerMetrics}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build components")
	}
	defer components.Close()

	job := worker.NewWarmJob(worker.WarmJobConfig{
		Config:   worker.DefaultWarmConfig(),
		Geocoder: components.Geocoder,
		Planner:  components.Planner,
		Requests: components.Assistant,
		Logger:   log.With().Str("component", "warmer").Logger(),
	})

	// The worker exposes a health endpoint for the container platform.
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "healthy",
			"version": Version,
			"warm":    job.MetricsSnapshot(),
			"cache":   components.Planner.CacheStats(),
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	go job.Start(ctx, cfg.WarmInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
