package ports

import (
	"context"
	"net/http"

	"weatherclient.app/internal/core/location"
)

// HTTPClient is the subset of *http.Client used to talk to AccuWeather
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// LocationResolver turns a location query into the canonical AccuWeather location record
type LocationResolver interface {
	Resolve(ctx context.Context, query location.Query) (*location.Location, error)
}
