package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherclient.app/internal/adapters/api"
	"weatherclient.app/internal/config"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg, DependencyOptions{})
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config, opts DependencyOptions) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	app := &Application{config: cfg}

	if err := app.initializePorts(opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing application ports...")

	deps, err := NewDependencyContainer(a.config, opts)
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}

	a.deps = deps
	a.ports = deps.ApplicationPorts()
	slog.Info("Application ports initialized successfully")
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Clients: a.deps.WeatherClients(),
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  a.ports.Health,
		MetricsHandler: a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// Ports returns the wired application ports
func (a *Application) Ports() *ports.ApplicationPorts {
	return a.ports
}
