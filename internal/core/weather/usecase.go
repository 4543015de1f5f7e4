package weather

import (
	"context"
	"fmt"

	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

// Client is a weather client bound to one resolved location
type Client interface {
	Location() *location.Location
	LocationKey() string
	GetFiveDayForecast(ctx context.Context) (*Forecast, error)
	GetCurrentConditions(ctx context.Context) (*CurrentConditions, error)
	GetHistoricalConditions(ctx context.Context) (*HistoricalConditions, error)
}

// ClientFactory resolves a query and returns a client bound to the resulting location
type ClientFactory interface {
	NewClient(ctx context.Context, query location.Query) (Client, error)
}

// ForecastReport is a 5-day forecast together with its derived views
type ForecastReport struct {
	Location *location.Location
	Headline string
	Tomorrow string
	Forecast *Forecast
}

// ConditionsReport is the current observation together with its description
type ConditionsReport struct {
	Location    *location.Location
	Description string
	Conditions  *CurrentConditions
}

// HistoryReport holds the past 24 hours of observations
type HistoryReport struct {
	Location     *location.Location
	Temperatures []float64
	Conditions   *HistoricalConditions
}

type UseCase struct {
	clients ClientFactory
	logger  ports.Logger
}

type UseCaseDependencies struct {
	Clients ClientFactory
	Logger  ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Clients == nil {
		return nil, errors.NewValidationError("weather client factory is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		clients: deps.Clients,
		logger:  deps.Logger,
	}, nil
}

// ResolveLocation returns the canonical location record for params
func (uc *UseCase) ResolveLocation(ctx context.Context, params location.QueryParams) (*location.Location, error) {
	client, err := uc.newClient(ctx, params)
	if err != nil {
		return nil, err
	}
	return client.Location(), nil
}

// GetForecast fetches the 5-day forecast and derives the headline and tomorrow summary
func (uc *UseCase) GetForecast(ctx context.Context, params location.QueryParams) (*ForecastReport, error) {
	client, err := uc.newClient(ctx, params)
	if err != nil {
		return nil, err
	}

	forecast, err := client.GetFiveDayForecast(ctx)
	if err != nil {
		uc.logger.Error("Failed to get forecast",
			ports.F("location_key", client.LocationKey()),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for location %s: %w", client.LocationKey(), err)
	}

	tomorrow, err := forecast.ForecastTomorrow()
	if err != nil {
		return nil, fmt.Errorf("describe tomorrow for location %s: %w", client.LocationKey(), err)
	}

	uc.logger.Debug("Forecast retrieved successfully",
		ports.F("location_key", client.LocationKey()),
		ports.F("days", forecast.Days()))
	return &ForecastReport{
		Location: client.Location(),
		Headline: forecast.Text(),
		Tomorrow: tomorrow,
		Forecast: forecast,
	}, nil
}

// GetCurrentConditions fetches the latest observation and describes it
func (uc *UseCase) GetCurrentConditions(ctx context.Context, params location.QueryParams) (*ConditionsReport, error) {
	client, err := uc.newClient(ctx, params)
	if err != nil {
		return nil, err
	}

	conditions, err := client.GetCurrentConditions(ctx)
	if err != nil {
		uc.logger.Error("Failed to get current conditions",
			ports.F("location_key", client.LocationKey()),
			ports.F("error", err))
		return nil, fmt.Errorf("get current conditions for location %s: %w", client.LocationKey(), err)
	}

	return &ConditionsReport{
		Location:    client.Location(),
		Description: conditions.Description(),
		Conditions:  conditions,
	}, nil
}

// GetHistoricalConditions fetches the past 24 hours of observations
func (uc *UseCase) GetHistoricalConditions(ctx context.Context, params location.QueryParams) (*HistoryReport, error) {
	client, err := uc.newClient(ctx, params)
	if err != nil {
		return nil, err
	}

	historical, err := client.GetHistoricalConditions(ctx)
	if err != nil {
		uc.logger.Error("Failed to get historical conditions",
			ports.F("location_key", client.LocationKey()),
			ports.F("error", err))
		return nil, fmt.Errorf("get historical conditions for location %s: %w", client.LocationKey(), err)
	}

	return &HistoryReport{
		Location:     client.Location(),
		Temperatures: historical.Temperatures(),
		Conditions:   historical,
	}, nil
}

func (uc *UseCase) newClient(ctx context.Context, params location.QueryParams) (Client, error) {
	query, err := location.NewQuery(params)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Resolving location",
		ports.F("strategy", query.Strategy().String()),
		ports.F("query", query.String()))

	client, err := uc.clients.NewClient(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resolve location %s: %w", query, err)
	}
	return client, nil
}
