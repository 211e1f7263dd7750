package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/raifproject/phonefinder/internal/api"
	"github.com/raifproject/phonefinder/internal/catalog"
	"github.com/raifproject/phonefinder/internal/config"
	"github.com/raifproject/phonefinder/internal/dataset"
	"github.com/raifproject/phonefinder/internal/engine"
	"github.com/raifproject/phonefinder/internal/events"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog: loaded once, read-only for the process lifetime. A load
	// failure means we never start serving.
	records, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logger.Error("failed to load phone dataset", "error", err)
		os.Exit(1)
	}
	store, err := catalog.New(records)
	if err != nil {
		logger.Error("failed to build catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "records", store.Len(), "categories", store.DistinctCategories())

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to events broker, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to events broker")
		}
	}

	eng := engine.New(store, engine.Config{
		MaxResults:   cfg.Engine.MaxResults,
		FallbackLow:  cfg.Engine.FallbackLow,
		FallbackHigh: cfg.Engine.FallbackHigh,
	}, logger)

	// API server
	router := api.NewRouter(store, eng, eventsClient, cfg, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
