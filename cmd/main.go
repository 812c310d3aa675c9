package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Houeta/stampcam/internal/config"
	"github.com/Houeta/stampcam/internal/geocoding"
	"github.com/Houeta/stampcam/internal/handler"
	"github.com/Houeta/stampcam/internal/metrics"
	"github.com/Houeta/stampcam/internal/salaryslip"
	"github.com/Houeta/stampcam/internal/service"
	"github.com/Houeta/stampcam/internal/stamper"
	"github.com/Houeta/stampcam/internal/staticmap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Create reverse-geocoding provider using factory pattern based on configuration.
	// This allows runtime selection between different providers (Google, Nominatim).
	providerConfig := geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.ProviderType),
		APIKey: cfg.APIKey,
		Logger: logger,
	}

	geoProvider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Reverse-geocoding provider initialized", "type", cfg.ProviderType)

	// Build the stamping pipeline: map client, compositor, orchestration service.
	mapClient := staticmap.NewClient(logger)
	stampService := service.NewStampService(
		logger,
		geoProvider,
		cfg.ProviderType, // Provider name for metrics
		mapClient,
		stamper.New(logger, cfg.FontDir),
		appMetrics,
		cfg.HTTPTimeout,
	)

	slipGenerator := salaryslip.NewGenerator(logger, cfg.SlipTemplate)

	router := handler.NewRouter(
		handler.NewStampHandler(logger, stampService),
		handler.NewSlipHandler(logger, slipGenerator, appMetrics),
		reg,
	)

	readTimeout := 10
	writeTimeout := 30
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	// Start the API server in a goroutine to allow main to listen for signals.
	go func() {
		logger.InfoContext(ctx, "Starting API server", "port", cfg.Port)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "API server failed", "error", serveErr)
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownTimeout := 5
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down API server gracefully", "error", err)
	}

	logger.Info("Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
