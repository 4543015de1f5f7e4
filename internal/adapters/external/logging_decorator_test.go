package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/internal/mocks"
	"weatherclient.app/internal/ports"
)

func TestWeatherClientLoggingDecorator_Forecast(t *testing.T) {
	forecast, err := weather.ParseForecast([]byte(delftForecastResponse))
	require.NoError(t, err)

	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().LocationKey().Return("249210")
	mockClient.EXPECT().GetFiveDayForecast(mock.Anything).Return(forecast, nil).Once()

	testLogger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, testLogger)

	result, err := decorator.GetFiveDayForecast(context.Background())

	assert.NoError(t, err)
	assert.Same(t, forecast, result)
	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, EndpointForecast, requestLog.fields["endpoint"])
	assert.Equal(t, "249210", requestLog.fields["location_key"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 5, responseLog.fields["days"])
	assert.Equal(t, "Expect showery weather Monday morning through Tuesday evening", responseLog.fields["headline"])
	assert.Contains(t, responseLog.fields, "duration_ms")
}

func TestWeatherClientLoggingDecorator_ConditionsFields(t *testing.T) {
	current, err := weather.ParseCurrentConditions([]byte(delftCurrentResponse))
	require.NoError(t, err)
	historical, err := weather.ParseHistoricalConditions([]byte(delftHistoricalResponse))
	require.NoError(t, err)

	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().LocationKey().Return("249210")
	mockClient.EXPECT().GetCurrentConditions(mock.Anything).Return(current, nil).Once()
	mockClient.EXPECT().GetHistoricalConditions(mock.Anything).Return(historical, nil).Once()

	testLogger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, testLogger)

	_, err = decorator.GetCurrentConditions(context.Background())
	require.NoError(t, err)
	_, err = decorator.GetHistoricalConditions(context.Background())
	require.NoError(t, err)

	require.Len(t, testLogger.entries, 4)
	assert.Equal(t, EndpointCurrentConditions, testLogger.entries[1].fields["endpoint"])
	assert.Equal(t, "Sunny", testLogger.entries[1].fields["weather_text"])
	assert.Equal(t, EndpointHistoricalConditions, testLogger.entries[3].fields["endpoint"])
	assert.Equal(t, 2, testLogger.entries[3].fields["entries"])
}

func TestWeatherClientLoggingDecorator_ErrorHandling(t *testing.T) {
	fetchErr := errors.New("API rate limit exceeded")

	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().LocationKey().Return("249210")
	mockClient.EXPECT().GetCurrentConditions(mock.Anything).Return(nil, fetchErr).Once()

	testLogger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, testLogger)

	result, err := decorator.GetCurrentConditions(context.Background())

	assert.Nil(t, result)
	assert.Same(t, fetchErr, err)
	require.Len(t, testLogger.entries, 2)

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "249210", errorLog.fields["location_key"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherClientLoggingDecorator_DurationTracking(t *testing.T) {
	historical, err := weather.ParseHistoricalConditions([]byte(delftHistoricalResponse))
	require.NoError(t, err)

	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().LocationKey().Return("249210")
	mockClient.EXPECT().GetHistoricalConditions(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*weather.HistoricalConditions, error) {
			time.Sleep(10 * time.Millisecond)
			return historical, nil
		}).Once()

	testLogger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, testLogger)

	_, err = decorator.GetHistoricalConditions(context.Background())
	require.NoError(t, err)

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestWeatherClientLoggingDecorator_DelegatesLocation(t *testing.T) {
	delft := &location.Location{Key: "249210", LocalizedName: "Delft"}

	mockClient := mocks.NewWeatherClient(t)
	mockClient.EXPECT().Location().Return(delft).Once()
	mockClient.EXPECT().LocationKey().Return("249210").Once()

	testLogger := &testLogger{}
	decorator := NewWeatherClientLoggingDecorator(mockClient, testLogger)

	assert.Same(t, delft, decorator.Location())
	assert.Equal(t, "249210", decorator.LocationKey())
	assert.Empty(t, testLogger.entries)
}

func TestLocationResolverLoggingDecorator_Resolve(t *testing.T) {
	query := location.CityQuery{City: "delft"}
	delft := &location.Location{
		Key:           "249210",
		LocalizedName: "Delft",
		Country:       location.Country{ID: "NL", LocalizedName: "Netherlands"},
	}

	mockResolver := mocks.NewLocationResolver(t)
	mockResolver.EXPECT().Resolve(mock.Anything, query).Return(delft, nil).Once()

	testLogger := &testLogger{}
	decorator := NewLocationResolverLoggingDecorator(mockResolver, testLogger)

	result, err := decorator.Resolve(context.Background(), query)

	assert.NoError(t, err)
	assert.Same(t, delft, result)
	require.Len(t, testLogger.entries, 2)
	assert.Equal(t, "Location lookup started", testLogger.entries[0].message)
	assert.Equal(t, "city", testLogger.entries[0].fields["strategy"])
	assert.Equal(t, "Location lookup completed", testLogger.entries[1].message)
	assert.Equal(t, "249210", testLogger.entries[1].fields["location_key"])
	assert.Equal(t, "Delft, Netherlands", testLogger.entries[1].fields["location"])
}

func TestLocationResolverLoggingDecorator_ErrorHandling(t *testing.T) {
	query := location.POIQuery{POI: "Atlantis"}
	lookupErr := errors.New("no location matched")

	mockResolver := mocks.NewLocationResolver(t)
	mockResolver.EXPECT().Resolve(mock.Anything, query).Return(nil, lookupErr).Once()

	testLogger := &testLogger{}
	decorator := NewLocationResolverLoggingDecorator(mockResolver, testLogger)

	result, err := decorator.Resolve(context.Background(), query)

	assert.Nil(t, result)
	assert.Same(t, lookupErr, err)
	require.Len(t, testLogger.entries, 2)
	assert.Equal(t, "ERROR", testLogger.entries[1].level)
	assert.Equal(t, "poi", testLogger.entries[1].fields["strategy"])
	assert.Equal(t, "no location matched", testLogger.entries[1].fields["error"])
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkWeatherClientLoggingDecorator(b *testing.B) {
	current, err := weather.ParseCurrentConditions([]byte(delftCurrentResponse))
	require.NoError(b, err)

	mockClient := mocks.NewWeatherClient(b)
	mockClient.EXPECT().LocationKey().Return("249210")
	mockClient.EXPECT().GetCurrentConditions(mock.Anything).Return(current, nil)

	decorator := NewWeatherClientLoggingDecorator(mockClient, &testLogger{})

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.GetCurrentConditions(context.Background())
		}
	})
}
