package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// AccuWeather
	HTTPClient HTTPClient

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Health         SystemHealthChecker
}
