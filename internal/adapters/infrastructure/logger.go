package infrastructure

import (
	"log/slog"

	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter creates a logger port backed by l; nil falls back to slog.Default
func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	if l == nil {
		return &SlogLoggerAdapter{logger: slog.Default()}
	}
	return &SlogLoggerAdapter{logger: l.Logger}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// MultiLogger fans every entry out to several loggers
type MultiLogger struct {
	loggers []ports.Logger
}

// NewMultiLogger creates a logger that writes to every non-nil logger given
func NewMultiLogger(loggers ...ports.Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Debug(msg, fields...)
	}
}

func (m *MultiLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Info(msg, fields...)
	}
}

func (m *MultiLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Warn(msg, fields...)
	}
}

func (m *MultiLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Error(msg, fields...)
	}
}

var (
	_ ports.Logger = (*SlogLoggerAdapter)(nil)
	_ ports.Logger = (*MultiLogger)(nil)
)
