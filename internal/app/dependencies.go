package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"weatherclient.app/internal/adapters/external"
	"weatherclient.app/internal/adapters/infrastructure"
	"weatherclient.app/internal/config"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	metrics *infrastructure.PrometheusMetricsCollector
	clients *external.WeatherClientFactory
	ports   *ports.ApplicationPorts
}

// DependencyOptions overrides parts of the wiring, mostly for tests
type DependencyOptions struct {
	// HTTPClient replaces the shared AccuWeather client; its timeout is left untouched
	HTTPClient ports.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializePorts(opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	appLogger, err := c.initializeLogger()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	var metrics ports.MetricsCollector = infrastructure.NoopMetricsCollector{}
	if c.config.Metrics.Enabled {
		c.metrics = infrastructure.NewPrometheusMetricsCollector(nil)
		metrics = c.metrics
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.config.AccuWeather.Timeout}
	}

	c.ports = &ports.ApplicationPorts{
		HTTPClient:     httpClient,
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
		Metrics:        metrics,
	}

	if err := c.initializeClients(); err != nil {
		return fmt.Errorf("create weather client factory: %w", err)
	}

	c.ports.Health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		AccuWeatherChecker: infrastructure.NewAccuWeatherHealthChecker(infrastructure.AccuWeatherHealthCheckerParams{
			BaseURL:    c.clients.BaseURL(),
			HTTPClient: c.ports.HTTPClient,
		}),
		ConfigChecker: infrastructure.NewConfigHealthChecker(c.ports.ConfigProvider),
		Metrics:       c.metrics,
	})

	slog.Info("Ports initialized successfully",
		"base_url", c.clients.BaseURL(),
		"metrics", c.ports.ConfigProvider.MetricsEnabled(),
		"request_logging", c.ports.ConfigProvider.GetLoggingConfig().EnableLogging)
	return nil
}

// initializeClients builds the weather client factory on top of the shared ports.
// The token is read from the config directly since ConfigProvider never exposes it.
func (c *DependencyContainer) initializeClients() error {
	accuWeather := c.ports.ConfigProvider.GetAccuWeatherConfig()

	clients, err := external.NewWeatherClientFactory(external.WeatherClientFactoryParams{
		AccuWeatherParams: external.AccuWeatherParams{
			Token:      c.config.AccuWeather.APIKey,
			BaseURL:    accuWeather.BaseURL,
			Language:   accuWeather.Language,
			Timeout:    accuWeather.Timeout,
			HTTPClient: c.ports.HTTPClient,
			Logger:     c.ports.Logger,
			Metrics:    c.ports.Metrics,
		},
		EnableLogging: c.ports.ConfigProvider.GetLoggingConfig().EnableLogging,
	})
	if err != nil {
		return err
	}
	c.clients = clients
	return nil
}

// initializeLogger installs the JSON slog handler as the default and,
// when a log file is configured, fans entries out to that file as well
func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	level, err := c.config.Logging.SlogLevel()
	if err != nil {
		return nil, err
	}

	base := logger.NewWithLevel(level)
	slog.SetDefault(base.Logger)

	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(base)
	if c.config.Logging.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, c.config.Logging.Level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			appLogger = infrastructure.NewMultiLogger(appLogger, fileLogger)
			slog.Info("File logging enabled", "path", fileLogger.Path())
		}
	}
	return appLogger, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// WeatherClients returns the factory every weather client is built by
func (c *DependencyContainer) WeatherClients() *external.WeatherClientFactory {
	return c.clients
}

// MetricsHandler serves the Prometheus registry, or nil when metrics are disabled
func (c *DependencyContainer) MetricsHandler() http.Handler {
	if c.metrics == nil {
		return nil
	}
	return c.metrics.Handler()
}
