package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

const (
	maxPortNumber = 65535
	maxTimeout    = 2 * time.Minute
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	AccuWeather AccuWeatherConfig `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
	Metrics     MetricsConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// AccuWeatherConfig holds the API credential and transport settings.
// The API key is only handed to the client factory and never logged.
type AccuWeatherConfig struct {
	APIKey   string        `envconfig:"ACCUWEATHER_API_KEY" required:"true"`
	BaseURL  string        `envconfig:"ACCUWEATHER_BASE_URL" default:"https://dataservice.accuweather.com"`
	Timeout  time.Duration `envconfig:"ACCUWEATHER_TIMEOUT" default:"10s"`
	Language string        `envconfig:"ACCUWEATHER_LANGUAGE"`
}

type LoggingConfig struct {
	Level         string `envconfig:"LOG_LEVEL" default:"info"`
	EnableLogging bool   `envconfig:"ACCUWEATHER_ENABLE_LOGGING" default:"true"`
	FilePath      string `envconfig:"ACCUWEATHER_LOG_FILE_PATH"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.AccuWeather.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (a *AccuWeatherConfig) Validate() error {
	if err := validation.ValidateToken(a.APIKey); err != nil {
		return errors.NewConfigurationError("ACCUWEATHER_API_KEY must be 32 alphanumeric characters", err)
	}
	if !strings.HasPrefix(a.BaseURL, "http://") && !strings.HasPrefix(a.BaseURL, "https://") {
		return errors.NewConfigurationError("ACCUWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if a.Timeout <= 0 || a.Timeout > maxTimeout {
		return errors.NewConfigurationError("ACCUWEATHER_TIMEOUT must be between 0 and 2m", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	if _, err := l.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (l *LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", err)
	}
	return level, nil
}
