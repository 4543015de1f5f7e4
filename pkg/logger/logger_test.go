package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "https://dataservice.accuweather.com/locations/v1/cities/search?q=delft&apikey=abcdefghijklmnopqrstuvwxyz012345&details=true",
			expected: "https://dataservice.accuweather.com/locations/v1/cities/search?q=delft&apikey=REDACTED&details=true",
		},
		{
			input:    `Get "http://localhost/x?apiKey=secret": dial tcp: connection refused`,
			expected: `Get "http://localhost/x?apiKey=REDACTED": dial tcp: connection refused`,
		},
		{
			input:    "no credentials here",
			expected: "no credentials here",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Redact(tt.input))
	}
}

func TestNewWithWriter_RedactsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.WithField("component", "transport").Info("request failed", "url", "http://host/a?apikey=abc123&details=true")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "transport", entry["component"])
	assert.Equal(t, "http://host/a?apikey=REDACTED&details=true", entry["url"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelDebug).WithFields(map[string]interface{}{
		"service": "weatherclient",
		"port":    8080,
	})

	log.Debug("starting")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "weatherclient", entry["service"])
	assert.Equal(t, float64(8080), entry["port"])
}

type requestDescription string

func (d requestDescription) String() string { return string(d) }

func TestNewWithWriter_RedactsErrorAndStringerAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)

	log.Error("forecast failed",
		"error", fmt.Errorf("status 401: %s", `{"Reference":"/forecasts/v1/daily/5day/1?apikey=abcdefghijklmnopqrstuvwxyz012345&details=true"}`),
		"request", requestDescription("GET /currentconditions/v1/1?apikey=abcdefghijklmnopqrstuvwxyz012345"),
		"attempts", 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, buf.String(), "abcdefghijklmnopqrstuvwxyz012345")
	assert.Contains(t, entry["error"], "apikey=REDACTED")
	assert.Equal(t, "GET /currentconditions/v1/1?apikey=REDACTED", entry["request"])
	assert.Equal(t, float64(1), entry["attempts"])
}
