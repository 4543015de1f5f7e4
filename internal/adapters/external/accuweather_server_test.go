package external

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherclient.app/internal/mocks"
)

const testToken = "abcdefghijklmnopqrstuvwxyz012345"

const delftSearchResponse = `[
	{
		"Version": 1,
		"Key": "249210",
		"Type": "City",
		"Rank": 55,
		"LocalizedName": "Delft",
		"EnglishName": "Delft",
		"Region": {"ID": "EUR", "LocalizedName": "Europe", "EnglishName": "Europe"},
		"Country": {"ID": "NL", "LocalizedName": "Netherlands", "EnglishName": "Netherlands"},
		"AdministrativeArea": {"ID": "ZH", "LocalizedName": "South Holland", "EnglishName": "South Holland", "Level": 1},
		"TimeZone": {"Code": "CEST", "Name": "Europe/Amsterdam", "GmtOffset": 2.0, "IsDaylightSaving": true},
		"GeoPosition": {"Latitude": 52.012, "Longitude": 4.359},
		"IsAlias": false
	},
	{
		"Version": 1,
		"Key": "3444170",
		"Type": "City",
		"Rank": 85,
		"LocalizedName": "Delft",
		"Country": {"ID": "ZA", "LocalizedName": "South Africa"},
		"GeoPosition": {"Latitude": -33.96, "Longitude": 18.83}
	}
]`

const geopositionResponse = `{
	"Version": 1,
	"Key": "2523601",
	"Type": "City",
	"Rank": 85,
	"LocalizedName": "Marloes",
	"Country": {"ID": "GB", "LocalizedName": "United Kingdom"},
	"AdministrativeArea": {"ID": "PEM", "LocalizedName": "Pembrokeshire"},
	"GeoPosition": {"Latitude": 51.73, "Longitude": -5.2}
}`

const delftForecastResponse = `{
	"Headline": {
		"EffectiveDate": "2026-10-19T08:00:00+02:00",
		"Severity": 4,
		"Text": "Expect showery weather Monday morning through Tuesday evening",
		"Category": "rain"
	},
	"DailyForecasts": [
		{
			"Date": "2026-10-18T07:00:00+02:00",
			"Temperature": {"Minimum": {"Value": 9.4, "Unit": "C", "UnitType": 17}, "Maximum": {"Value": 14.2, "Unit": "C", "UnitType": 17}},
			"Day": {"IconPhrase": "Cloudy", "RainProbability": 10},
			"Night": {"IconPhrase": "Mostly cloudy", "RainProbability": 5}
		},
		{
			"Date": "2026-10-19T07:00:00+02:00",
			"Temperature": {"Minimum": {"Value": 10.1, "Unit": "C", "UnitType": 17}, "Maximum": {"Value": 15, "Unit": "C", "UnitType": 17}},
			"Day": {"IconPhrase": "Partly sunny w/ showers", "RainProbability": 40},
			"Night": {"IconPhrase": "Showers", "RainProbability": 60}
		},
		{
			"Date": "2026-10-20T07:00:00+02:00",
			"Temperature": {"Minimum": {"Value": 8, "Unit": "C", "UnitType": 17}, "Maximum": {"Value": 13.1, "Unit": "C", "UnitType": 17}},
			"Day": {"IconPhrase": "Showers", "RainProbability": 75},
			"Night": {"IconPhrase": "Cloudy", "RainProbability": 20}
		},
		{
			"Date": "2026-10-21T07:00:00+02:00",
			"Temperature": {"Minimum": {"Value": 7.5, "Unit": "C", "UnitType": 17}, "Maximum": {"Value": 12.8, "Unit": "C", "UnitType": 17}},
			"Day": {"IconPhrase": "Intermittent clouds", "RainProbability": 20},
			"Night": {"IconPhrase": "Clear", "RainProbability": 0}
		},
		{
			"Date": "2026-10-22T07:00:00+02:00",
			"Temperature": {"Minimum": {"Value": 6.9, "Unit": "C", "UnitType": 17}, "Maximum": {"Value": 16.4, "Unit": "C", "UnitType": 17}},
			"Day": {"IconPhrase": "Sunny", "RainProbability": 0},
			"Night": {"IconPhrase": "Clear", "RainProbability": 0}
		}
	]
}`

const delftCurrentResponse = `[{
	"LocalObservationDateTime": "2026-10-18T14:25:00+02:00",
	"WeatherText": "Sunny",
	"IsDayTime": true,
	"Temperature": {"Metric": {"Value": 21, "Unit": "C", "UnitType": 17}, "Imperial": {"Value": 70, "Unit": "F", "UnitType": 18}},
	"Wind": {
		"Direction": {"Degrees": 315, "Localized": "NW", "English": "NW"},
		"Speed": {"Metric": {"Value": 11.1, "Unit": "km/h", "UnitType": 7}, "Imperial": {"Value": 6.9, "Unit": "mi/h", "UnitType": 9}}
	}
}]`

const delftHistoricalResponse = `[
	{
		"WeatherText": "Sunny",
		"Temperature": {"Metric": {"Value": 21, "Unit": "C"}, "Imperial": {"Value": 70, "Unit": "F"}},
		"TemperatureSummary": {
			"Past6HourRange": {"Minimum": {"Metric": {"Value": 15, "Unit": "C"}, "Imperial": {"Value": 59, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 21, "Unit": "C"}, "Imperial": {"Value": 70, "Unit": "F"}}},
			"Past12HourRange": {"Minimum": {"Metric": {"Value": 11, "Unit": "C"}, "Imperial": {"Value": 52, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 21, "Unit": "C"}, "Imperial": {"Value": 70, "Unit": "F"}}},
			"Past24HourRange": {"Minimum": {"Metric": {"Value": 9.8, "Unit": "C"}, "Imperial": {"Value": 50, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 21, "Unit": "C"}, "Imperial": {"Value": 70, "Unit": "F"}}}
		}
	},
	{
		"WeatherText": "Partly sunny",
		"Temperature": {"Metric": {"Value": 20.4, "Unit": "C"}, "Imperial": {"Value": 69, "Unit": "F"}},
		"TemperatureSummary": {
			"Past6HourRange": {"Minimum": {"Metric": {"Value": 14, "Unit": "C"}, "Imperial": {"Value": 57, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 20.4, "Unit": "C"}, "Imperial": {"Value": 69, "Unit": "F"}}},
			"Past12HourRange": {"Minimum": {"Metric": {"Value": 11, "Unit": "C"}, "Imperial": {"Value": 52, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 20.4, "Unit": "C"}, "Imperial": {"Value": 69, "Unit": "F"}}},
			"Past24HourRange": {"Minimum": {"Metric": {"Value": 9.8, "Unit": "C"}, "Imperial": {"Value": 50, "Unit": "F"}}, "Maximum": {"Metric": {"Value": 20.4, "Unit": "C"}, "Imperial": {"Value": 69, "Unit": "F"}}}
		}
	}
]`

type cannedResponse struct {
	status int
	body   string
}

// fakeAccuWeather serves canned responses by path and records every request it sees
type fakeAccuWeather struct {
	t         *testing.T
	server    *httptest.Server
	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []*http.Request
}

func newFakeAccuWeather(t *testing.T) *fakeAccuWeather {
	f := &fakeAccuWeather{t: t, responses: map[string]cannedResponse{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAccuWeather) on(path string, status int, body string) *fakeAccuWeather {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = cannedResponse{status: status, body: body}
	return f
}

func (f *fakeAccuWeather) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	assert.Equal(f.t, http.MethodGet, r.Method)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, err := w.Write([]byte(resp.body))
	assert.NoError(f.t, err)
}

func (f *fakeAccuWeather) requestCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, r := range f.requests {
		if r.URL.Path == path {
			count++
		}
	}
	return count
}

func (f *fakeAccuWeather) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeAccuWeather) totalRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAccuWeather) params() AccuWeatherParams {
	return AccuWeatherParams{
		Token:   testToken,
		BaseURL: f.server.URL,
	}
}

// Helper function to set up logger mock with variadic argument expectations
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for fields := 0; fields <= 7; fields++ {
		anything := make([]interface{}, fields)
		for i := range anything {
			anything[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, anything...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, anything...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, anything...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, anything...).Maybe()
	}

	return mockLogger
}
