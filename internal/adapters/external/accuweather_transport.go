// Package external provides adapters for external services.
// These adapters implement ports for the AccuWeather location and weather APIs.
package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/logger"
	"weatherclient.app/pkg/validation"
)

const (
	DefaultBaseURL = "https://dataservice.accuweather.com"
	DefaultTimeout = 10 * time.Second

	// maxErrorBodyBytes bounds how much of a failed response is kept for diagnostics
	maxErrorBodyBytes = 512
)

// Metric labels for the AccuWeather endpoints
const (
	EndpointLocation             = "location"
	EndpointForecast             = "forecast"
	EndpointCurrentConditions    = "current_conditions"
	EndpointHistoricalConditions = "historical_conditions"
)

// AccuWeatherParams holds the settings shared by every AccuWeather adapter
type AccuWeatherParams struct {
	Token      string
	BaseURL    string
	Language   string
	Timeout    time.Duration
	HTTPClient ports.HTTPClient
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
}

// StatusError is returned when AccuWeather answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("AccuWeather returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("AccuWeather returned status %d: %s", e.StatusCode, e.Body)
}

// AccuWeatherTransport issues authenticated GET requests against the AccuWeather API.
// It never retries and never caches.
type AccuWeatherTransport struct {
	token    string
	baseURL  string
	language string
	client   ports.HTTPClient
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// NewAccuWeatherTransport validates the token and applies defaults
func NewAccuWeatherTransport(params AccuWeatherParams) (*AccuWeatherTransport, error) {
	if err := validation.ValidateToken(params.Token); err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &AccuWeatherTransport{
		token:    params.Token,
		baseURL:  baseURL,
		language: params.Language,
		client:   client,
		logger:   params.Logger,
		metrics:  params.Metrics,
	}, nil
}

// BaseURL returns the API host requests are sent to
func (t *AccuWeatherTransport) BaseURL() string {
	return t.baseURL
}

// Get performs one GET of path and returns the response body.
// q is appended as the already-encoded "q" parameter when not empty.
// Transport failures and non-2xx statuses are returned unclassified; callers map them to their own error type.
func (t *AccuWeatherTransport) Get(ctx context.Context, endpoint, path, q string) ([]byte, error) {
	requestURL := t.buildURL(path, q)

	startTime := time.Now()
	body, err := t.do(ctx, requestURL)
	t.record(ctx, endpoint, err == nil, time.Since(startTime))

	if err != nil {
		return nil, err
	}
	return body, nil
}

func (t *AccuWeatherTransport) do(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", t.redactError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", t.redactError(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && t.logger != nil {
			t.logger.Warn("Failed to close AccuWeather response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: t.redact(strings.TrimSpace(string(snippet)))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

func (t *AccuWeatherTransport) buildURL(path, q string) string {
	var query strings.Builder
	if q != "" {
		query.WriteString("q=")
		query.WriteString(q)
		query.WriteString("&")
	}
	query.WriteString("apikey=")
	query.WriteString(url.QueryEscape(t.token))
	query.WriteString("&details=true")
	if t.language != "" {
		query.WriteString("&language=")
		query.WriteString(url.QueryEscape(t.language))
	}
	return t.baseURL + path + "?" + query.String()
}

func (t *AccuWeatherTransport) record(ctx context.Context, endpoint string, success bool, duration time.Duration) {
	if t.metrics != nil {
		t.metrics.RecordAPICall(ctx, endpoint, success, duration)
	}
}

// redact masks the API token wherever it appears in s, including error bodies that echo the request
func (t *AccuWeatherTransport) redact(s string) string {
	return logger.Redact(strings.ReplaceAll(s, url.QueryEscape(t.token), "REDACTED"))
}

// redactError strips the request URL out of *url.Error so the token cannot leak through error messages
func (t *AccuWeatherTransport) redactError(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		urlErr.URL = t.redact(urlErr.URL)
	}
	return err
}

// escapeQuery percent-encodes a free text search term with spaces as %20
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
