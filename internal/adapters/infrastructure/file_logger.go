package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/logger"
)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// FileLoggerAdapter appends one JSON object per entry to a log file.
// Entries below the configured level are dropped and apikey values are masked.
type FileLoggerAdapter struct {
	filePath string
	minLevel int
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates the log directory and returns a logger writing to logPath.
// level is one of debug, info, warn or error; anything else keeps every entry.
func NewFileLoggerAdapter(logPath, level string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minLevel: levelRank[normalizeLevel(level)],
	}, nil
}

// Path returns the file entries are appended to
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write("ERROR", msg, fields)
}

func (f *FileLoggerAdapter) write(level, msg string, fields []ports.Field) {
	if levelRank[level] < f.minLevel {
		return
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"level":     level,
		"message":   logger.Redact(msg),
	}
	for _, field := range fields {
		entry[field.Key] = fieldValue(field.Value)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"timestamp":%q,"level":"ERROR","message":"failed to marshal log entry","error":%q}`,
			time.Now().Format(time.RFC3339), err.Error()))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.appendLine(line)
}

func (f *FileLoggerAdapter) appendLine(line []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func fieldValue(v interface{}) interface{} {
	switch value := v.(type) {
	case error:
		return logger.Redact(value.Error())
	case string:
		return logger.Redact(value)
	case fmt.Stringer:
		return logger.Redact(value.String())
	default:
		return v
	}
}

func normalizeLevel(level string) string {
	switch level {
	case "debug", "DEBUG":
		return "DEBUG"
	case "warn", "WARN", "warning":
		return "WARN"
	case "error", "ERROR":
		return "ERROR"
	case "info", "INFO":
		return "INFO"
	default:
		return "DEBUG"
	}
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
