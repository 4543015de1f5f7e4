package external

import (
	"context"
	"time"

	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/internal/ports"
)

// LocationResolverLoggingDecorator decorates a location resolver with structured logging
type LocationResolverLoggingDecorator struct {
	resolver ports.LocationResolver
	logger   ports.Logger
}

// NewLocationResolverLoggingDecorator creates a new logging decorator for location resolvers
func NewLocationResolverLoggingDecorator(resolver ports.LocationResolver, logger ports.Logger) ports.LocationResolver {
	return &LocationResolverLoggingDecorator{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve wraps the resolver call with structured logging
func (d *LocationResolverLoggingDecorator) Resolve(ctx context.Context, query location.Query) (*location.Location, error) {
	strategy := location.StrategyUnknown.String()
	if query != nil {
		strategy = query.Strategy().String()
	}

	d.logger.Info("Location lookup started",
		ports.F("strategy", strategy),
		ports.F("event", "request"))

	startTime := time.Now()
	loc, err := d.resolver.Resolve(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Location lookup failed",
			ports.F("strategy", strategy),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Location lookup completed",
		ports.F("strategy", strategy),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location_key", loc.Key),
		ports.F("location", loc.DisplayName()))

	return loc, nil
}

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client weather.Client
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client weather.Client, logger ports.Logger) weather.Client {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// Location delegates to the wrapped client
func (d *WeatherClientLoggingDecorator) Location() *location.Location {
	return d.client.Location()
}

// LocationKey delegates to the wrapped client
func (d *WeatherClientLoggingDecorator) LocationKey() string {
	return d.client.LocationKey()
}

// GetFiveDayForecast wraps the forecast call with structured logging
func (d *WeatherClientLoggingDecorator) GetFiveDayForecast(ctx context.Context) (*weather.Forecast, error) {
	done := d.started(EndpointForecast)
	forecast, err := d.client.GetFiveDayForecast(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil,
		ports.F("days", forecast.Days()),
		ports.F("headline", forecast.Text()))
	return forecast, nil
}

// GetCurrentConditions wraps the current conditions call with structured logging
func (d *WeatherClientLoggingDecorator) GetCurrentConditions(ctx context.Context) (*weather.CurrentConditions, error) {
	done := d.started(EndpointCurrentConditions)
	conditions, err := d.client.GetCurrentConditions(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("weather_text", conditions.Current().WeatherText))
	return conditions, nil
}

// GetHistoricalConditions wraps the historical conditions call with structured logging
func (d *WeatherClientLoggingDecorator) GetHistoricalConditions(ctx context.Context) (*weather.HistoricalConditions, error) {
	done := d.started(EndpointHistoricalConditions)
	historical, err := d.client.GetHistoricalConditions(ctx)
	if err != nil {
		done(err)
		return nil, err
	}
	done(nil, ports.F("entries", historical.Len()))
	return historical, nil
}

// started logs the request and returns a function that logs its outcome
func (d *WeatherClientLoggingDecorator) started(endpoint string) func(err error, fields ...ports.Field) {
	locationKey := d.client.LocationKey()

	d.logger.Info("Weather API request started",
		ports.F("endpoint", endpoint),
		ports.F("location_key", locationKey),
		ports.F("event", "request"))

	startTime := time.Now()

	return func(err error, fields ...ports.Field) {
		duration := time.Since(startTime)

		if err != nil {
			d.logger.Error("Weather API request failed",
				ports.F("endpoint", endpoint),
				ports.F("location_key", locationKey),
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error", err.Error()))
			return
		}

		logFields := []ports.Field{
			ports.F("endpoint", endpoint),
			ports.F("location_key", locationKey),
			ports.F("event", "response"),
			ports.F("duration_ms", duration.Milliseconds()),
		}
		d.logger.Info("Weather API request completed", append(logFields, fields...)...)
	}
}
