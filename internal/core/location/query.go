package location

import (
	"fmt"
	"strconv"

	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

// Strategy identifies which AccuWeather search endpoint resolves a query
type Strategy int

const (
	StrategyUnknown Strategy = iota
	StrategyCitySearch
	StrategyCityCountrySearch
	StrategyPOISearch
	StrategyGeopositionSearch
)

// String returns the string representation of the strategy
func (s Strategy) String() string {
	switch s {
	case StrategyCitySearch:
		return "city"
	case StrategyCityCountrySearch:
		return "city_country"
	case StrategyPOISearch:
		return "poi"
	case StrategyGeopositionSearch:
		return "geoposition"
	default:
		return "unknown"
	}
}

// Query is a location query. It is implemented by CityQuery, POIQuery and GeoQuery only.
type Query interface {
	Strategy() Strategy
	Validate() error
	String() string
	isQuery()
}

// CityQuery searches by city name, optionally narrowed by country
type CityQuery struct {
	City    string `validate:"required"`
	Country string
}

// POIQuery searches by point-of-interest name
type POIQuery struct {
	POI string `validate:"required"`
}

// GeoQuery searches by geographic position
type GeoQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func (CityQuery) isQuery() {}
func (POIQuery) isQuery() {}
func (GeoQuery) isQuery() {}

// Strategy returns the city or city+country search strategy
func (q CityQuery) Strategy() Strategy {
	if q.Country != "" {
		return StrategyCityCountrySearch
	}
	return StrategyCitySearch
}

// Strategy returns StrategyPOISearch
func (q POIQuery) Strategy() Strategy {
	return StrategyPOISearch
}

// Strategy returns StrategyGeopositionSearch
func (q GeoQuery) Strategy() Strategy {
	return StrategyGeopositionSearch
}

func (q CityQuery) Validate() error {
	return validateQuery(q)
}

func (q POIQuery) Validate() error {
	return validateQuery(q)
}

func (q GeoQuery) Validate() error {
	return validateQuery(q)
}

func (q CityQuery) String() string {
	if q.Country != "" {
		return fmt.Sprintf("city=%s country=%s", q.City, q.Country)
	}
	return "city=" + q.City
}

func (q POIQuery) String() string {
	return "poi=" + q.POI
}

func (q GeoQuery) String() string {
	return "geo=" + q.Coordinates()
}

// Coordinates renders "lat,lon" using the shortest decimal form of each value
func (q GeoQuery) Coordinates() string {
	return strconv.FormatFloat(q.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.Lon, 'f', -1, 64)
}

func validateQuery(q Query) error {
	if err := validation.Struct(q); err != nil {
		return errors.NewInvalidQueryError("invalid location query: " + validation.DescribeFieldError(err))
	}
	return nil
}

// QueryParams holds the loosely typed inputs a caller may provide.
// Exactly one of {City[, Country]}, {POI} or {Lat, Lon} must be set.
type QueryParams struct {
	City    string
	Country string
	POI     string
	Lat     *float64
	Lon     *float64
}

// NewQuery selects the query variant for params and validates it
func NewQuery(params QueryParams) (Query, error) {
	city, hasCity := validation.TrimAndValidate(params.City)
	country, hasCountry := validation.TrimAndValidate(params.Country)
	poi, hasPOI := validation.TrimAndValidate(params.POI)
	hasLat, hasLon := params.Lat != nil, params.Lon != nil

	if hasLat != hasLon {
		return nil, errors.NewInvalidQueryError(`both "lat" and "lon" must be provided`)
	}
	hasGeo := hasLat && hasLon

	variants := 0
	for _, present := range []bool{hasCity, hasPOI, hasGeo} {
		if present {
			variants++
		}
	}

	switch {
	case variants > 1:
		return nil, errors.NewInvalidQueryError(`only one of "city", "poi" or a "lat lon" combination can be provided`)
	case variants == 0 && hasCountry:
		return nil, errors.NewInvalidQueryError(`"country" can only be used together with "city"`)
	case variants == 0:
		return nil, errors.NewInvalidQueryError(`one of "city", "poi" or a "lat lon" combination must be provided`)
	case hasCountry && !hasCity:
		return nil, errors.NewInvalidQueryError(`"country" can only be used together with "city"`)
	}

	var query Query
	switch {
	case hasCity:
		query = CityQuery{City: city, Country: country}
	case hasPOI:
		query = POIQuery{POI: poi}
	default:
		query = GeoQuery{Lat: *params.Lat, Lon: *params.Lon}
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}
