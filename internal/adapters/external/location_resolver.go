package external

import (
	"context"
	"fmt"

	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/ports"
	"weatherclient.app/pkg/errors"
)

// AccuWeather location search endpoints
const (
	citySearchPath        = "/locations/v1/cities/search"
	cityCountrySearchPath = "/locations/v1/search"
	poiSearchPath         = "/locations/v1/poi/search"
	geopositionSearchPath = "/locations/v1/cities/geoposition/search"
)

// LocationResolverAdapter implements the LocationResolver port against the AccuWeather locations API
type LocationResolverAdapter struct {
	transport *AccuWeatherTransport
}

// NewLocationResolverAdapter creates a resolver with its own transport
func NewLocationResolverAdapter(params AccuWeatherParams) (*LocationResolverAdapter, error) {
	transport, err := NewAccuWeatherTransport(params)
	if err != nil {
		return nil, err
	}
	return NewLocationResolverWithTransport(transport), nil
}

// NewLocationResolverWithTransport creates a resolver sharing an existing transport
func NewLocationResolverWithTransport(transport *AccuWeatherTransport) *LocationResolverAdapter {
	return &LocationResolverAdapter{transport: transport}
}

// Resolve issues exactly one search request and returns the canonical (first) record
func (r *LocationResolverAdapter) Resolve(ctx context.Context, query location.Query) (*location.Location, error) {
	if query == nil {
		return nil, errors.NewInvalidQueryError("location query is required")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	path, q := searchRequest(query)
	body, err := r.transport.Get(ctx, EndpointLocation, path, q)
	if err != nil {
		return nil, errors.NewLocationLookupError(
			fmt.Sprintf("%s location search failed", query.Strategy()), err)
	}

	loc, err := location.ParseLocation(body)
	if err != nil {
		if errors.IsMalformedResponseError(err) {
			return nil, errors.NewLocationLookupError(
				fmt.Sprintf("%s location search returned an unreadable response", query.Strategy()), err)
		}
		return nil, err
	}
	return loc, nil
}

// searchRequest maps a query to its endpoint path and encoded "q" value
func searchRequest(query location.Query) (string, string) {
	switch q := query.(type) {
	case location.GeoQuery:
		return geopositionSearchPath, q.Coordinates()
	case location.POIQuery:
		return poiSearchPath, escapeQuery(q.POI)
	case location.CityQuery:
		if q.Country != "" {
			return cityCountrySearchPath, escapeQuery(q.City) + "%20" + escapeQuery(q.Country)
		}
		return citySearchPath, escapeQuery(q.City)
	}
	return "", ""
}

var _ ports.LocationResolver = (*LocationResolverAdapter)(nil)
