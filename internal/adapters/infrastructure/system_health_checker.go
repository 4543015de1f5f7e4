package infrastructure

import (
	"context"

	"weatherclient.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	accuWeatherChecker ports.HealthChecker
	configChecker      ports.HealthChecker
	metrics            *PrometheusMetricsCollector
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	AccuWeatherChecker ports.HealthChecker
	ConfigChecker      ports.HealthChecker
	Metrics            *PrometheusMetricsCollector
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		accuWeatherChecker: config.AccuWeatherChecker,
		configChecker:      config.ConfigChecker,
		metrics:            config.Metrics,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.accuWeatherChecker != nil {
		results["accuweather"] = s.accuWeatherChecker.Check(ctx)
	}

	if s.configChecker != nil {
		results["config"] = s.configChecker.Check(ctx)
	}

	if s.metrics != nil {
		results["metrics"] = ports.HealthStatus{
			Component: "metrics",
			Status:    statusHealthy,
			Details:   s.metrics.GetStats(),
		}
	}

	return results
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
