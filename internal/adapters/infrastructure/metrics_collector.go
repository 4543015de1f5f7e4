package infrastructure

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherclient.app/internal/ports"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// PrometheusMetricsCollector records AccuWeather API calls as Prometheus series
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	mu       sync.RWMutex
	calls    map[string]int64
	failures map[string]int64
}

// NewPrometheusMetricsCollector registers the API call series on a dedicated registry.
// A nil registry gets a fresh one so collectors never clash across tests.
func NewPrometheusMetricsCollector(registry *prometheus.Registry) *PrometheusMetricsCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accuweather_api_requests_total",
				Help: "The total number of AccuWeather API requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "accuweather_api_request_duration_seconds",
				Help:    "AccuWeather API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		calls:    make(map[string]int64),
		failures: make(map[string]int64),
	}
}

// RecordAPICall counts one request and observes its latency
func (m *PrometheusMetricsCollector) RecordAPICall(_ context.Context, endpoint string, success bool, duration time.Duration) {
	outcome := outcomeSuccess
	if !success {
		outcome = outcomeFailure
	}

	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.latency.WithLabelValues(endpoint).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[endpoint]++
	if !success {
		m.failures[endpoint]++
	}
}

// GetStats returns per-endpoint call and failure counts
func (m *PrometheusMetricsCollector) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]interface{}, len(m.calls))
	for endpoint, calls := range m.calls {
		stats[endpoint] = map[string]int64{
			"calls":    calls,
			"failures": m.failures[endpoint],
		}
	}
	return stats
}

// Registry returns the registry the series live on
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NoopMetricsCollector drops every measurement; used when METRICS_ENABLED is false
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAPICall(context.Context, string, bool, time.Duration) {}

var (
	_ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)
	_ ports.MetricsCollector = NoopMetricsCollector{}
)
