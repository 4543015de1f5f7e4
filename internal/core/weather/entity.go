package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

// tomorrowIndex is the position of tomorrow in a daily forecast; index 0 is always today
const tomorrowIndex = 1

// Measurement is a value+unit+unit-type triple
type Measurement struct {
	Value    float64 `json:"Value"`
	Unit     string  `json:"Unit" validate:"required"`
	UnitType int     `json:"UnitType"`
}

// String renders the measurement as "<value><unit>", e.g. "21C"
func (m Measurement) String() string {
	return formatNumber(m.Value) + m.Unit
}

// UnitPair carries the same measurement in metric and imperial units
type UnitPair struct {
	Metric   Measurement `json:"Metric"`
	Imperial Measurement `json:"Imperial"`
}

type Headline struct {
	EffectiveDate      string  `json:"EffectiveDate"`
	EffectiveEpochDate int64   `json:"EffectiveEpochDate"`
	Severity           int     `json:"Severity"`
	Text               string  `json:"Text" validate:"required"`
	Category           string  `json:"Category"`
	EndDate            *string `json:"EndDate"`
	EndEpochDate       *int64  `json:"EndEpochDate"`
	MobileLink         string  `json:"MobileLink"`
	Link               string  `json:"Link"`
}

type TemperatureRange struct {
	Minimum Measurement `json:"Minimum"`
	Maximum Measurement `json:"Maximum"`
}

type WindDirection struct {
	Degrees   float64 `json:"Degrees"`
	Localized string  `json:"Localized"`
	English   string  `json:"English"`
}

// ForecastWind is the wind block of a forecast half-day
type ForecastWind struct {
	Speed     Measurement   `json:"Speed"`
	Direction WindDirection `json:"Direction"`
}

// HalfDay is the day or night part of a daily forecast
type HalfDay struct {
	Icon                     int           `json:"Icon"`
	IconPhrase               string        `json:"IconPhrase" validate:"required"`
	HasPrecipitation         bool          `json:"HasPrecipitation"`
	PrecipitationType        *string       `json:"PrecipitationType,omitempty"`
	PrecipitationIntensity   *string       `json:"PrecipitationIntensity,omitempty"`
	ShortPhrase              string        `json:"ShortPhrase"`
	LongPhrase               string        `json:"LongPhrase"`
	PrecipitationProbability int           `json:"PrecipitationProbability"`
	ThunderstormProbability  int           `json:"ThunderstormProbability"`
	RainProbability          int           `json:"RainProbability"`
	SnowProbability          int           `json:"SnowProbability"`
	IceProbability           int           `json:"IceProbability"`
	Wind                     *ForecastWind `json:"Wind,omitempty"`
	CloudCover               int           `json:"CloudCover"`
}

type DailyForecast struct {
	Date        string           `json:"Date" validate:"required"`
	EpochDate   int64            `json:"EpochDate"`
	Temperature TemperatureRange `json:"Temperature"`
	Day         HalfDay          `json:"Day"`
	Night       HalfDay          `json:"Night"`
	Sources     []string         `json:"Sources"`
	MobileLink  string           `json:"MobileLink"`
	Link        string           `json:"Link"`
}

// Summary renders the day as "<phrase>, max temp is <max> and <rain>% chance of rain."
func (d *DailyForecast) Summary() string {
	phrase := strings.ReplaceAll(d.Day.IconPhrase, "w/", "with")
	return fmt.Sprintf("%s, max temp is %s and %d%% chance of rain.",
		phrase, d.Temperature.Maximum.String(), d.Day.RainProbability)
}

// Forecast is a parsed 5-day forecast. It is read-only after parsing.
type Forecast struct {
	Headline       Headline        `json:"Headline"`
	DailyForecasts []DailyForecast `json:"DailyForecasts" validate:"dive"`

	raw []byte
}

// ParseForecast decodes and validates a daily forecast payload
func ParseForecast(body []byte) (*Forecast, error) {
	if validation.PayloadShape(body) != '{' {
		return nil, errors.NewMalformedResponseError("forecast payload must be a JSON object", nil)
	}

	var forecast Forecast
	if err := validation.DecodePayload("forecast", body, &forecast); err != nil {
		return nil, err
	}
	if err := requireTomorrow(len(forecast.DailyForecasts)); err != nil {
		return nil, err
	}
	if err := validation.ValidatePayload("forecast", &forecast); err != nil {
		return nil, err
	}

	forecast.raw = append([]byte(nil), body...)
	return &forecast, nil
}

func requireTomorrow(days int) error {
	if days <= tomorrowIndex {
		return errors.NewMalformedResponseError(
			fmt.Sprintf("forecast has %d daily entries, at least %d are required", days, tomorrowIndex+1), nil)
	}
	return nil
}

// Text returns the headline text
func (f *Forecast) Text() string {
	return f.Headline.Text
}

// Days returns the number of daily entries
func (f *Forecast) Days() int {
	return len(f.DailyForecasts)
}

// ForecastTomorrow describes the second daily entry
func (f *Forecast) ForecastTomorrow() (string, error) {
	if err := requireTomorrow(len(f.DailyForecasts)); err != nil {
		return "", err
	}
	return f.DailyForecasts[tomorrowIndex].Summary(), nil
}

// Raw returns a copy of the payload the forecast was parsed from
func (f *Forecast) Raw() []byte {
	return append([]byte(nil), f.raw...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
