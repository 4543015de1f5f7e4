// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
}

// WeatherUseCase is the use case the HTTP adapter depends on
type WeatherUseCase interface {
	ResolveLocation(ctx context.Context, params location.QueryParams) (*location.Location, error)
	GetForecast(ctx context.Context, params location.QueryParams) (*weather.ForecastReport, error)
	GetCurrentConditions(ctx context.Context, params location.QueryParams) (*weather.ConditionsReport, error)
	GetHistoricalConditions(ctx context.Context, params location.QueryParams) (*weather.HistoryReport, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker

	// MetricsHandler serves /metrics; the route is omitted when nil
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogMiddleware())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/location", s.getLocation)
		api.GET("/forecast", s.getForecast)
		api.GET("/conditions", s.getCurrentConditions)
		api.GET("/historical", s.getHistoricalConditions)
		api.GET("/health", s.getHealth)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
