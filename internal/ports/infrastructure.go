package ports

import (
	"context"
	"time"
)

// AccuWeatherConfig represents AccuWeather client configuration
type AccuWeatherConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Language string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level         string
	EnableLogging bool
	FilePath      string
}

// ConfigProvider defines the contract for configuration management.
// The API token is deliberately not exposed.
type ConfigProvider interface {
	GetAccuWeatherConfig() AccuWeatherConfig
	GetServerConfig() ServerConfig
	GetLoggingConfig() LoggingConfig
	MetricsEnabled() bool
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordAPICall(ctx context.Context, endpoint string, success bool, duration time.Duration)
}
