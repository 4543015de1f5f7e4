package weather

import (
	"fmt"
	"strings"

	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

type Wind struct {
	Direction WindDirection `json:"Direction"`
	Speed     UnitPair      `json:"Speed"`
}

type TemperatureRangePair struct {
	Minimum UnitPair `json:"Minimum"`
	Maximum UnitPair `json:"Maximum"`
}

type TemperatureSummary struct {
	Past6HourRange  TemperatureRangePair `json:"Past6HourRange"`
	Past12HourRange TemperatureRangePair `json:"Past12HourRange"`
	Past24HourRange TemperatureRangePair `json:"Past24HourRange"`
}

// Observation is one entry of the current or historical conditions endpoints
type Observation struct {
	LocalObservationDateTime string              `json:"LocalObservationDateTime"`
	EpochTime                int64               `json:"EpochTime"`
	WeatherText              string              `json:"WeatherText" validate:"required"`
	WeatherIcon              int                 `json:"WeatherIcon"`
	HasPrecipitation         bool                `json:"HasPrecipitation"`
	PrecipitationType        *string             `json:"PrecipitationType"`
	IsDayTime                bool                `json:"IsDayTime"`
	Temperature              UnitPair            `json:"Temperature"`
	RealFeelTemperature      *UnitPair           `json:"RealFeelTemperature,omitempty"`
	RelativeHumidity         *int                `json:"RelativeHumidity,omitempty"`
	DewPoint                 *UnitPair           `json:"DewPoint,omitempty"`
	Wind                     *Wind               `json:"Wind,omitempty"`
	WindGust                 *Wind               `json:"WindGust,omitempty"`
	UVIndex                  *int                `json:"UVIndex,omitempty"`
	UVIndexText              string              `json:"UVIndexText,omitempty"`
	Visibility               *UnitPair           `json:"Visibility,omitempty"`
	CloudCover               *int                `json:"CloudCover,omitempty"`
	Pressure                 *UnitPair           `json:"Pressure,omitempty"`
	TemperatureSummary       *TemperatureSummary `json:"TemperatureSummary,omitempty"`
	MobileLink               string              `json:"MobileLink"`
	Link                     string              `json:"Link"`
}

// observations wraps a list payload so it can be validated as a struct
type observations struct {
	Entries []Observation `json:"Entries" validate:"dive"`
}

func parseObservations(kind string, body []byte) ([]Observation, error) {
	if validation.PayloadShape(body) != '[' {
		return nil, errors.NewMalformedResponseError(kind+" payload must be a JSON list", nil)
	}

	var payload observations
	if err := validation.DecodePayload(kind, body, &payload.Entries); err != nil {
		return nil, err
	}
	if err := validation.ValidatePayload(kind, &payload); err != nil {
		return nil, err
	}
	return payload.Entries, nil
}

func missingField(kind string, index int, field string) error {
	return errors.NewSchemaValidationError(
		fmt.Sprintf("%s payload: Entries[%d].%s failed 'required'", kind, index, field), nil)
}

// CurrentConditions is the parsed current conditions response: a single-element list
type CurrentConditions struct {
	Observations []Observation

	raw []byte
}

// ParseCurrentConditions decodes and validates a current conditions payload
func ParseCurrentConditions(body []byte) (*CurrentConditions, error) {
	entries, err := parseObservations("current conditions", body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewMalformedResponseError("current conditions payload is an empty list", nil)
	}
	if entries[0].Wind == nil {
		return nil, missingField("current conditions", 0, "Wind")
	}

	return &CurrentConditions{
		Observations: entries,
		raw:          append([]byte(nil), body...),
	}, nil
}

// Current returns the observation the response describes
func (c *CurrentConditions) Current() *Observation {
	return &c.Observations[0]
}

// Description renders the observation as a sentence, e.g.
// "At the moment: sunny, with a temperature of 21C. The wind is coming from the NW at 11.1km/h."
func (c *CurrentConditions) Description() string {
	obs := c.Current()
	return fmt.Sprintf("At the moment: %s, with a temperature of %s. The wind is coming from the %s at %s.",
		strings.ToLower(obs.WeatherText),
		obs.Temperature.Metric.String(),
		obs.Wind.Direction.Localized,
		obs.Wind.Speed.Metric.String())
}

// Raw returns a copy of the payload the conditions were parsed from
func (c *CurrentConditions) Raw() []byte {
	return append([]byte(nil), c.raw...)
}

// HistoricalConditions is the ordered list of hourly observations of the past 24 hours
type HistoricalConditions struct {
	Observations []Observation

	raw []byte
}

// ParseHistoricalConditions decodes and validates a historical conditions payload.
// Every entry must carry a TemperatureSummary, which is only present when details=true.
func ParseHistoricalConditions(body []byte) (*HistoricalConditions, error) {
	entries, err := parseObservations("historical conditions", body)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].TemperatureSummary == nil {
			return nil, missingField("historical conditions", i, "TemperatureSummary")
		}
	}

	return &HistoricalConditions{
		Observations: entries,
		raw:          append([]byte(nil), body...),
	}, nil
}

// Len returns the number of hourly entries
func (h *HistoricalConditions) Len() int {
	return len(h.Observations)
}

// Temperatures returns each entry's 24-hour maximum in metric units, in payload order
func (h *HistoricalConditions) Temperatures() []float64 {
	temperatures := make([]float64, 0, len(h.Observations))
	for _, obs := range h.Observations {
		temperatures = append(temperatures, obs.TemperatureSummary.Past24HourRange.Maximum.Metric.Value)
	}
	return temperatures
}

// Raw returns a copy of the payload the conditions were parsed from
func (h *HistoricalConditions) Raw() []byte {
	return append([]byte(nil), h.raw...)
}
