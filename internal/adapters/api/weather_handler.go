package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"weatherclient.app/internal/core/location"
	"weatherclient.app/internal/core/weather"
	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

// LocationRequest holds the query string of every weather endpoint
type LocationRequest struct {
	City    string   `form:"city"`
	Country string   `form:"country"`
	POI     string   `form:"poi"`
	Lat     string `form:"lat"`
	Lon     string `form:"lon"`
}

// params converts the request into query params; blank coordinates count as absent
func (r LocationRequest) params() (location.QueryParams, error) {
	lat, err := parseCoordinate("lat", r.Lat)
	if err != nil {
		return location.QueryParams{}, err
	}
	lon, err := parseCoordinate("lon", r.Lon)
	if err != nil {
		return location.QueryParams{}, err
	}

	return location.QueryParams{
		City:    r.City,
		Country: r.Country,
		POI:     r.POI,
		Lat:     lat,
		Lon:     lon,
	}, nil
}

func parseCoordinate(name, raw string) (*float64, error) {
	value, ok := validation.TrimAndValidate(raw)
	if !ok {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.NewInvalidQueryError(fmt.Sprintf("%q must be a number", name))
	}
	return &parsed, nil
}

// LocationResponse represents a resolved AccuWeather location
type LocationResponse struct {
	Key                string  `json:"key"`
	Type               string  `json:"type"`
	Name               string  `json:"name"`
	DisplayName        string  `json:"displayName"`
	AdministrativeArea string  `json:"administrativeArea,omitempty"`
	Country            string  `json:"country"`
	CountryCode        string  `json:"countryCode"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	TimeZone           string  `json:"timeZone,omitempty"`
}

// DailyForecastResponse is one day of the 5-day forecast
type DailyForecastResponse struct {
	Date            string `json:"date"`
	Minimum         string `json:"minimum"`
	Maximum         string `json:"maximum"`
	Day             string `json:"day"`
	Night           string `json:"night"`
	RainProbability int    `json:"rainProbability"`
	Summary         string `json:"summary"`
}

// ForecastResponse represents the HTTP response for a 5-day forecast
type ForecastResponse struct {
	Location LocationResponse        `json:"location"`
	Headline string                  `json:"headline"`
	Tomorrow string                  `json:"tomorrow"`
	Days     []DailyForecastResponse `json:"days"`
}

// ConditionsResponse represents the HTTP response for current conditions
type ConditionsResponse struct {
	Location         LocationResponse `json:"location"`
	Description      string           `json:"description"`
	WeatherText      string           `json:"weatherText"`
	Temperature      string           `json:"temperature"`
	IsDayTime        bool             `json:"isDayTime"`
	RelativeHumidity *int             `json:"relativeHumidity,omitempty"`
	ObservedAt       string           `json:"observedAt"`
}

// HistoricalResponse represents the HTTP response for the past 24 hours
type HistoricalResponse struct {
	Location     LocationResponse `json:"location"`
	Entries      int              `json:"entries"`
	Temperatures []float64        `json:"temperatures"`
}

// bindLocation reads the location query string; non-numeric coordinates are an invalid query
func (s *HTTPServerAdapter) bindLocation(c *gin.Context) (location.QueryParams, bool) {
	var request LocationRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		s.handleError(c, errors.NewInvalidQueryError("invalid location query string"))
		return location.QueryParams{}, false
	}
	params, err := request.params()
	if err != nil {
		s.handleError(c, err)
		return location.QueryParams{}, false
	}
	return params, true
}

// getLocation handles GET /api/location requests
func (s *HTTPServerAdapter) getLocation(c *gin.Context) {
	params, ok := s.bindLocation(c)
	if !ok {
		return
	}

	loc, err := s.weatherUseCase.ResolveLocation(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLocationResponse(loc))
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	params, ok := s.bindLocation(c)
	if !ok {
		return
	}

	report, err := s.weatherUseCase.GetForecast(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := ForecastResponse{
		Location: toLocationResponse(report.Location),
		Headline: report.Headline,
		Tomorrow: report.Tomorrow,
		Days:     make([]DailyForecastResponse, 0, report.Forecast.Days()),
	}
	for i := range report.Forecast.DailyForecasts {
		response.Days = append(response.Days, toDailyForecastResponse(&report.Forecast.DailyForecasts[i]))
	}

	slog.Debug("Forecast result", "request_id", c.GetString(requestIDKey), "location_key", response.Location.Key)
	c.JSON(http.StatusOK, response)
}

// getCurrentConditions handles GET /api/conditions requests
func (s *HTTPServerAdapter) getCurrentConditions(c *gin.Context) {
	params, ok := s.bindLocation(c)
	if !ok {
		return
	}

	report, err := s.weatherUseCase.GetCurrentConditions(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}

	current := report.Conditions.Current()
	c.JSON(http.StatusOK, ConditionsResponse{
		Location:         toLocationResponse(report.Location),
		Description:      report.Description,
		WeatherText:      current.WeatherText,
		Temperature:      current.Temperature.Metric.String(),
		IsDayTime:        current.IsDayTime,
		RelativeHumidity: current.RelativeHumidity,
		ObservedAt:       current.LocalObservationDateTime,
	})
}

// getHistoricalConditions handles GET /api/historical requests
func (s *HTTPServerAdapter) getHistoricalConditions(c *gin.Context) {
	params, ok := s.bindLocation(c)
	if !ok {
		return
	}

	report, err := s.weatherUseCase.GetHistoricalConditions(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoricalResponse{
		Location:     toLocationResponse(report.Location),
		Entries:      report.Conditions.Len(),
		Temperatures: report.Temperatures,
	})
}

func toLocationResponse(loc *location.Location) LocationResponse {
	if loc == nil {
		return LocationResponse{}
	}
	return LocationResponse{
		Key:                loc.Key,
		Type:               loc.Type,
		Name:               loc.LocalizedName,
		DisplayName:        loc.DisplayName(),
		AdministrativeArea: loc.AdministrativeArea.LocalizedName,
		Country:            loc.Country.LocalizedName,
		CountryCode:        loc.Country.ID,
		Latitude:           loc.GeoPosition.Latitude,
		Longitude:          loc.GeoPosition.Longitude,
		TimeZone:           loc.TimeZone.Name,
	}
}

func toDailyForecastResponse(day *weather.DailyForecast) DailyForecastResponse {
	return DailyForecastResponse{
		Date:            day.Date,
		Minimum:         day.Temperature.Minimum.String(),
		Maximum:         day.Temperature.Maximum.String(),
		Day:             day.Day.IconPhrase,
		Night:           day.Night.IconPhrase,
		RainProbability: day.Day.RainProbability,
		Summary:         day.Summary(),
	}
}
