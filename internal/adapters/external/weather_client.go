package external

import (
	"context"
	"net/url"

	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

// WeatherClientParams holds parameters for creating a weather client
type WeatherClientParams struct {
	AccuWeatherParams
	Query location.Query

	// Resolver overrides the resolver built from the client's own transport
	Resolver ports.LocationResolver
}

// WeatherClient fetches forecasts and observations for one resolved location.
// The location is resolved once, when the client is created.
type WeatherClient struct {
	transport *AccuWeatherTransport
	location  *location.Location
}

// NewWeatherClient validates the token and query, resolves the location and only then returns the client
func NewWeatherClient(ctx context.Context, params WeatherClientParams) (*WeatherClient, error) {
	transport, err := NewAccuWeatherTransport(params.AccuWeatherParams)
	if err != nil {
		return nil, err
	}
	return newWeatherClient(ctx, transport, params.Resolver, params.Query)
}

func newWeatherClient(ctx context.Context, transport *AccuWeatherTransport, resolver ports.LocationResolver, query location.Query) (*WeatherClient, error) {
	if query == nil {
		return nil, errors.NewInvalidQueryError("location query is required")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if resolver == nil {
		resolver = NewLocationResolverWithTransport(transport)
	}

	loc, err := resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	return &WeatherClient{
		transport: transport,
		location:  loc,
	}, nil
}

// Location returns the resolved location record
func (c *WeatherClient) Location() *location.Location {
	return c.location
}

// LocationKey returns the AccuWeather key of the resolved location
func (c *WeatherClient) LocationKey() string {
	return c.location.Key
}

// GetFiveDayForecast fetches the daily forecast for the next five days
func (c *WeatherClient) GetFiveDayForecast(ctx context.Context) (*weather.Forecast, error) {
	body, err := c.transport.Get(ctx, EndpointForecast, "/forecasts/v1/daily/5day/"+c.escapedKey(), "")
	if err != nil {
		return nil, errors.NewForecastFetchError("forecast request failed", err)
	}
	return weather.ParseForecast(body)
}

// GetCurrentConditions fetches the latest observation
func (c *WeatherClient) GetCurrentConditions(ctx context.Context) (*weather.CurrentConditions, error) {
	body, err := c.transport.Get(ctx, EndpointCurrentConditions, "/currentconditions/v1/"+c.escapedKey(), "")
	if err != nil {
		return nil, errors.NewCurrentConditionsFetchError("current conditions request failed", err)
	}
	return weather.ParseCurrentConditions(body)
}

// GetHistoricalConditions fetches the hourly observations of the past 24 hours
func (c *WeatherClient) GetHistoricalConditions(ctx context.Context) (*weather.HistoricalConditions, error) {
	body, err := c.transport.Get(ctx, EndpointHistoricalConditions, "/currentconditions/v1/"+c.escapedKey()+"/historical/24", "")
	if err != nil {
		return nil, errors.NewHistoricalConditionsFetchError("historical conditions request failed", err)
	}
	return weather.ParseHistoricalConditions(body)
}

func (c *WeatherClient) escapedKey() string {
	return url.PathEscape(c.location.Key)
}

// WeatherClientFactory builds weather clients that share one transport
type WeatherClientFactory struct {
	transport     *AccuWeatherTransport
	resolver      ports.LocationResolver
	logger        ports.Logger
	enableLogging bool
}

// WeatherClientFactoryParams holds parameters for creating the factory
type WeatherClientFactoryParams struct {
	AccuWeatherParams
	EnableLogging bool
}

// NewWeatherClientFactory creates a factory whose clients share one HTTP client
func NewWeatherClientFactory(params WeatherClientFactoryParams) (*WeatherClientFactory, error) {
	transport, err := NewAccuWeatherTransport(params.AccuWeatherParams)
	if err != nil {
		return nil, err
	}

	var resolver ports.LocationResolver = NewLocationResolverWithTransport(transport)
	if params.EnableLogging && params.Logger != nil {
		resolver = NewLocationResolverLoggingDecorator(resolver, params.Logger)
	}

	return &WeatherClientFactory{
		transport:     transport,
		resolver:      resolver,
		logger:        params.Logger,
		enableLogging: params.EnableLogging && params.Logger != nil,
	}, nil
}

// NewClient resolves query and returns a client bound to the result
func (f *WeatherClientFactory) NewClient(ctx context.Context, query location.Query) (weather.Client, error) {
	client, err := newWeatherClient(ctx, f.transport, f.resolver, query)
	if err != nil {
		return nil, err
	}
	if f.enableLogging {
		return NewWeatherClientLoggingDecorator(client, f.logger), nil
	}
	return client, nil
}

// Resolver returns the resolver the factory uses
func (f *WeatherClientFactory) Resolver() ports.LocationResolver {
	return f.resolver
}

// BaseURL returns the API host clients talk to
func (f *WeatherClientFactory) BaseURL() string {
	return f.transport.BaseURL()
}

var (
	_ weather.Client        = (*WeatherClient)(nil)
	_ weather.ClientFactory = (*WeatherClientFactory)(nil)
)
