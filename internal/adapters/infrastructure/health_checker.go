package infrastructure

import (
	"context"
	"net/http"
	"time"

	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/logger"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	defaultProbeTimeout = 3 * time.Second
)

// AccuWeatherHealthChecker probes the AccuWeather host without a credential.
// Any HTTP response counts as reachable; the probe never spends API quota.
type AccuWeatherHealthChecker struct {
	baseURL string
	client  ports.HTTPClient
	timeout time.Duration
}

// AccuWeatherHealthCheckerParams holds parameters for creating the checker
type AccuWeatherHealthCheckerParams struct {
	BaseURL    string
	HTTPClient ports.HTTPClient
	Timeout    time.Duration
}

// NewAccuWeatherHealthChecker creates a new AccuWeather reachability checker
func NewAccuWeatherHealthChecker(params AccuWeatherHealthCheckerParams) *AccuWeatherHealthChecker {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &AccuWeatherHealthChecker{
		baseURL: params.BaseURL,
		client:  client,
		timeout: timeout,
	}
}

// Check issues a HEAD request against the configured host
func (a *AccuWeatherHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "accuweather",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"baseURL": a.baseURL,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, a.baseURL, nil)
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = logger.Redact(err.Error())
		status.Details["reachable"] = false
		return status
	}
	_ = resp.Body.Close()

	status.Details["reachable"] = true
	status.Details["statusCode"] = resp.StatusCode
	return status
}

// ConfigHealthChecker reports the effective, non-secret configuration
type ConfigHealthChecker struct {
	configProvider ports.ConfigProvider
}

// NewConfigHealthChecker creates a new configuration checker
func NewConfigHealthChecker(configProvider ports.ConfigProvider) *ConfigHealthChecker {
	return &ConfigHealthChecker{configProvider: configProvider}
}

// Check always succeeds once the configuration was loaded
func (c *ConfigHealthChecker) Check(_ context.Context) ports.HealthStatus {
	accuWeather := c.configProvider.GetAccuWeatherConfig()
	logging := c.configProvider.GetLoggingConfig()

	return ports.HealthStatus{
		Component: "config",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"baseURL":        accuWeather.BaseURL,
			"timeout":        accuWeather.Timeout.String(),
			"language":       accuWeather.Language,
			"logLevel":       logging.Level,
			"requestLogging": logging.EnableLogging,
			"metrics":        c.configProvider.MetricsEnabled(),
		},
	}
}

var (
	_ ports.HealthChecker = (*AccuWeatherHealthChecker)(nil)
	_ ports.HealthChecker = (*ConfigHealthChecker)(nil)
)
