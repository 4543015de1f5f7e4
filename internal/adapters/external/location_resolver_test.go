package external

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherclient.app/internal/core/location"
	"weatherclient.app/pkg/errors"
)

func TestLocationResolver_Resolve_Strategies(t *testing.T) {
	tests := []struct {
		name      string
		query     location.Query
		path      string
		response  string
		expectedQ string
		key       string
	}{
		{
			name:      "City",
			query:     location.CityQuery{City: "delft"},
			path:      citySearchPath,
			response:  delftSearchResponse,
			expectedQ: "q=delft&apikey=" + testToken + "&details=true",
			key:       "249210",
		},
		{
			name:      "CityWithCountry",
			query:     location.CityQuery{City: "sydney", Country: "canada"},
			path:      cityCountrySearchPath,
			response:  `[{"Key": "49574", "LocalizedName": "Sydney", "Country": {"ID": "CA", "LocalizedName": "Canada"}}]`,
			expectedQ: "q=sydney%20canada&apikey=" + testToken + "&details=true",
			key:       "49574",
		},
		{
			name:      "POI",
			query:     location.POIQuery{POI: "Eiffel tower"},
			path:      poiSearchPath,
			response:  `[{"Key": "1-623_1_AL", "Type": "POI", "LocalizedName": "Eiffel Tower", "Country": {"ID": "FR"}}]`,
			expectedQ: "q=Eiffel%20tower&apikey=" + testToken + "&details=true",
			key:       "1-623_1_AL",
		},
		{
			name:      "Geoposition",
			query:     location.GeoQuery{Lat: 51.988, Lon: -4.88},
			path:      geopositionSearchPath,
			response:  geopositionResponse,
			expectedQ: "q=51.988,-4.88&apikey=" + testToken + "&details=true",
			key:       "2523601",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeAccuWeather(t).on(tt.path, http.StatusOK, tt.response)
			resolver, err := NewLocationResolverAdapter(fake.params())
			require.NoError(t, err)

			loc, err := resolver.Resolve(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.key, loc.Key)
			assert.Equal(t, 1, fake.totalRequests())
			assert.Equal(t, tt.path, fake.lastRequest().URL.Path)
			assert.Equal(t, tt.expectedQ, fake.lastRequest().URL.RawQuery)
		})
	}
}

func TestLocationResolver_Resolve_FirstRecordIsCanonical(t *testing.T) {
	fake := newFakeAccuWeather(t).on(citySearchPath, http.StatusOK, delftSearchResponse)
	resolver, err := NewLocationResolverAdapter(fake.params())
	require.NoError(t, err)

	loc, err := resolver.Resolve(context.Background(), location.CityQuery{City: "delft"})

	require.NoError(t, err)
	assert.Equal(t, "249210", loc.Key)
	assert.Equal(t, "NL", loc.Country.ID)
	assert.Equal(t, "Delft, South Holland, Netherlands", loc.DisplayName())
}

func TestLocationResolver_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		errType  errors.ErrorType
	}{
		{"EmptyList", http.StatusOK, `[]`, errors.LocationNotFoundError},
		{"NullGeoposition", http.StatusOK, `null`, errors.LocationNotFoundError},
		{"ServerError", http.StatusInternalServerError, `{"Message": "boom"}`, errors.LocationLookupError},
		{"Unauthorized", http.StatusUnauthorized, `{"Code": "Unauthorized"}`, errors.LocationLookupError},
		{"RateLimited", http.StatusServiceUnavailable, `{"Code": "ServiceUnavailable"}`, errors.LocationLookupError},
		{"MalformedJSON", http.StatusOK, `[{"Key": `, errors.LocationLookupError},
		{"HTMLBody", http.StatusOK, `<html></html>`, errors.LocationLookupError},
		{"ObjectWithoutKey", http.StatusOK, `{}`, errors.SchemaValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeAccuWeather(t).on(citySearchPath, tt.status, tt.response)
			resolver, err := NewLocationResolverAdapter(fake.params())
			require.NoError(t, err)

			loc, err := resolver.Resolve(context.Background(), location.CityQuery{City: "delft"})

			assert.Nil(t, loc)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errType, appErr.Type)
			assert.NotContains(t, err.Error(), testToken)
			assert.Equal(t, 1, fake.totalRequests())
		})
	}
}

func TestLocationResolver_Resolve_LookupErrorKeepsCause(t *testing.T) {
	fake := newFakeAccuWeather(t).on(poiSearchPath, http.StatusBadGateway, ``)
	resolver, err := NewLocationResolverAdapter(fake.params())
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), location.POIQuery{POI: "Eiffel tower"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestLocationResolver_Resolve_InvalidQuery(t *testing.T) {
	fake := newFakeAccuWeather(t)
	resolver, err := NewLocationResolverAdapter(fake.params())
	require.NoError(t, err)

	for _, query := range []location.Query{nil, location.CityQuery{}, location.GeoQuery{Lat: 120}} {
		loc, err := resolver.Resolve(context.Background(), query)

		assert.Nil(t, loc)
		assert.True(t, errors.IsInvalidQueryError(err))
	}
	assert.Equal(t, 0, fake.totalRequests())
}

func TestNewLocationResolverAdapter_InvalidToken(t *testing.T) {
	resolver, err := NewLocationResolverAdapter(AccuWeatherParams{Token: "not-a-token"})

	assert.Nil(t, resolver)
	assert.True(t, errors.IsInvalidCredentialError(err))
}
