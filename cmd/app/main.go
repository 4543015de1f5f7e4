package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherclient.app/internal/app"
	"weatherclient.app/internal/config"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	logConfiguration(application.Config())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupGracefulShutdown(cancel, application)

	slog.Info("Starting AccuWeather client service...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}
}

// logConfiguration prints the effective settings; the API key is only reported as set
func logConfiguration(cfg *config.Config) {
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"baseURL", cfg.AccuWeather.BaseURL,
		"apiKeySet", cfg.AccuWeather.APIKey != "",
		"timeout", cfg.AccuWeather.Timeout.String(),
		"language", cfg.AccuWeather.Language,
		"logLevel", cfg.Logging.Level,
		"requestLogging", cfg.Logging.EnableLogging,
		"logFile", cfg.Logging.FilePath,
		"metrics", cfg.Metrics.Enabled)
}

func setupGracefulShutdown(cancel context.CancelFunc, app *app.Application) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}

		os.Exit(0)
	}()
}
