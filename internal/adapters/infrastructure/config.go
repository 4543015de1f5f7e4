package infrastructure

import (
	"weatherclient.app/internal/config"
	"weatherclient.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port.
// It never hands out the API key; only the client factory receives it.
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAccuWeatherConfig returns the transport settings of the AccuWeather client
func (c *ConfigProviderAdapter) GetAccuWeatherConfig() ports.AccuWeatherConfig {
	return ports.AccuWeatherConfig{
		BaseURL:  c.config.AccuWeather.BaseURL,
		Timeout:  c.config.AccuWeather.Timeout,
		Language: c.config.AccuWeather.Language,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetLoggingConfig returns logging configuration
func (c *ConfigProviderAdapter) GetLoggingConfig() ports.LoggingConfig {
	return ports.LoggingConfig{
		Level:         c.config.Logging.Level,
		EnableLogging: c.config.Logging.EnableLogging,
		FilePath:      c.config.Logging.FilePath,
	}
}

// MetricsEnabled reports whether API calls are exported to Prometheus
func (c *ConfigProviderAdapter) MetricsEnabled() bool {
	return c.config.Metrics.Enabled
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
