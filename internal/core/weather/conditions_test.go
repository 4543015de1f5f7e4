package weather

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherclient.app/pkg/errors"
)

const currentConditionsPayload = `[{
	"LocalObservationDateTime": "2026-10-18T14:25:00+02:00",
	"EpochTime": 1760790300,
	"WeatherText": "Sunny",
	"WeatherIcon": 1,
	"HasPrecipitation": false,
	"PrecipitationType": null,
	"IsDayTime": true,
	"Temperature": {
		"Metric": {"Value": 21, "Unit": "C", "UnitType": 17},
		"Imperial": {"Value": 70, "Unit": "F", "UnitType": 18}
	},
	"RelativeHumidity": 58,
	"Wind": {
		"Direction": {"Degrees": 315, "Localized": "NW", "English": "NW"},
		"Speed": {
			"Metric": {"Value": 11.1, "Unit": "km/h", "UnitType": 7},
			"Imperial": {"Value": 6.9, "Unit": "mi/h", "UnitType": 9}
		}
	},
	"UVIndex": 3,
	"UVIndexText": "Moderate",
	"MobileLink": "http://www.accuweather.com/en/nl/delft/249210/current-weather/249210",
	"Link": "http://www.accuweather.com/en/nl/delft/249210/current-weather/249210"
}]`

func historicalEntry(hour int, max24 float64) string {
	return fmt.Sprintf(`{
		"LocalObservationDateTime": "2026-10-18T%02d:25:00+02:00",
		"EpochTime": %d,
		"WeatherText": "Cloudy",
		"Temperature": {"Metric": {"Value": 14, "Unit": "C", "UnitType": 17}, "Imperial": {"Value": 57, "Unit": "F", "UnitType": 18}},
		"TemperatureSummary": {
			"Past6HourRange": {"Minimum": %s, "Maximum": %s},
			"Past12HourRange": {"Minimum": %s, "Maximum": %s},
			"Past24HourRange": {"Minimum": %s, "Maximum": %s}
		}
	}`, hour, 1760740000+hour*3600,
		temperaturePair(11), temperaturePair(14),
		temperaturePair(9), temperaturePair(14),
		temperaturePair(8.3), temperaturePair(max24))
}

func temperaturePair(celsius float64) string {
	return fmt.Sprintf(`{"Metric": {"Value": %v, "Unit": "C", "UnitType": 17}, "Imperial": {"Value": %v, "Unit": "F", "UnitType": 18}}`,
		celsius, celsius*9/5+32)
}

func TestParseCurrentConditions(t *testing.T) {
	conditions, err := ParseCurrentConditions([]byte(currentConditionsPayload))

	require.NoError(t, err)
	require.Len(t, conditions.Observations, 1)
	current := conditions.Current()
	assert.Equal(t, "Sunny", current.WeatherText)
	assert.True(t, current.IsDayTime)
	assert.Nil(t, current.PrecipitationType)
	require.NotNil(t, current.RelativeHumidity)
	assert.Equal(t, 58, *current.RelativeHumidity)
}

func TestCurrentConditions_Description(t *testing.T) {
	conditions, err := ParseCurrentConditions([]byte(currentConditionsPayload))
	require.NoError(t, err)

	description := conditions.Description()

	assert.Equal(t, "At the moment: sunny, with a temperature of 21C. The wind is coming from the NW at 11.1km/h.", description)
	assert.Contains(t, description, "sunny")
	assert.Contains(t, description, "21C")
}

func TestParseCurrentConditions_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		errType  errors.ErrorType
		contains string
	}{
		{
			name:    "EmptyList",
			body:    "[]",
			errType: errors.MalformedResponseError,
		},
		{
			name:    "ObjectInsteadOfList",
			body:    `{"WeatherText": "Sunny"}`,
			errType: errors.MalformedResponseError,
		},
		{
			name:     "MissingWeatherText",
			body:     strings.Replace(currentConditionsPayload, `"WeatherText": "Sunny",`, "", 1),
			errType:  errors.SchemaValidationError,
			contains: "WeatherText",
		},
		{
			name:     "MissingTemperatureUnit",
			body:     strings.Replace(currentConditionsPayload, `"Value": 21, "Unit": "C", `, `"Value": 21, `, 1),
			errType:  errors.SchemaValidationError,
			contains: "Temperature.Metric.Unit",
		},
		{
			name:     "MissingWind",
			body:     `[{"WeatherText": "Sunny", "Temperature": {"Metric": {"Value": 21, "Unit": "C"}, "Imperial": {"Value": 70, "Unit": "F"}}}]`,
			errType:  errors.SchemaValidationError,
			contains: "Wind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, err := ParseCurrentConditions([]byte(tt.body))

			assert.Nil(t, conditions)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errType, appErr.Type)
			if tt.contains != "" {
				assert.Contains(t, appErr.Message, tt.contains)
			}
		})
	}
}

func TestParseHistoricalConditions(t *testing.T) {
	entries := []string{historicalEntry(14, 15.6), historicalEntry(13, 15.1), historicalEntry(12, 14.9)}
	body := "[" + strings.Join(entries, ",") + "]"

	historical, err := ParseHistoricalConditions([]byte(body))

	require.NoError(t, err)
	assert.Equal(t, 3, historical.Len())
	assert.Equal(t, []float64{15.6, 15.1, 14.9}, historical.Temperatures())
	assert.JSONEq(t, body, string(historical.Raw()))
}

func TestHistoricalConditions_TemperaturesIsFresh(t *testing.T) {
	historical, err := ParseHistoricalConditions([]byte("[" + historicalEntry(14, 15.6) + "]"))
	require.NoError(t, err)

	first := historical.Temperatures()
	first[0] = -99

	assert.Equal(t, []float64{15.6}, historical.Temperatures())
}

func TestParseHistoricalConditions_EmptyList(t *testing.T) {
	historical, err := ParseHistoricalConditions([]byte("[]"))

	require.NoError(t, err)
	assert.Equal(t, 0, historical.Len())
	assert.Empty(t, historical.Temperatures())
}

func TestParseHistoricalConditions_MissingTemperatureSummary(t *testing.T) {
	body := "[" + historicalEntry(14, 15.6) + `,{"WeatherText": "Cloudy", "Temperature": {"Metric": {"Value": 14, "Unit": "C"}, "Imperial": {"Value": 57, "Unit": "F"}}}]`

	historical, err := ParseHistoricalConditions([]byte(body))

	assert.Nil(t, historical)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.SchemaValidationError, appErr.Type)
	assert.Contains(t, appErr.Message, "Entries[1].TemperatureSummary")
}
