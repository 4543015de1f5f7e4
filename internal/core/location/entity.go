package location

import (
	"bytes"
	"fmt"

	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/validation"
)

type Region struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
	EnglishName   string `json:"EnglishName"`
}

type Country struct {
	ID            string `json:"ID" validate:"required"`
	LocalizedName string `json:"LocalizedName"`
	EnglishName   string `json:"EnglishName"`
}

// AdministrativeArea is the first-level subdivision (state, province) of a country
type AdministrativeArea struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
	EnglishName   string `json:"EnglishName"`
	Level         int    `json:"Level"`
	LocalizedType string `json:"LocalizedType"`
	EnglishType   string `json:"EnglishType"`
	CountryID     string `json:"CountryID"`
}

type SupplementalAdminArea struct {
	Level         int    `json:"Level"`
	LocalizedName string `json:"LocalizedName"`
	EnglishName   string `json:"EnglishName"`
}

type TimeZone struct {
	Code             string  `json:"Code"`
	Name             string  `json:"Name"`
	GmtOffset        float64 `json:"GmtOffset"`
	IsDaylightSaving bool    `json:"IsDaylightSaving"`
	NextOffsetChange *string `json:"NextOffsetChange"`
}

// Measurement is a value+unit+unit-type triple
type Measurement struct {
	Value    float64 `json:"Value"`
	Unit     string  `json:"Unit"`
	UnitType int     `json:"UnitType"`
}

// UnitPair carries the same measurement in metric and imperial units
type UnitPair struct {
	Metric   Measurement `json:"Metric"`
	Imperial Measurement `json:"Imperial"`
}

type GeoPosition struct {
	Latitude  float64  `json:"Latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"Longitude" validate:"gte=-180,lte=180"`
	Elevation UnitPair `json:"Elevation"`
}

type Source struct {
	DataType         string  `json:"DataType"`
	Source           string  `json:"Source"`
	SourceID         int     `json:"SourceId"`
	PartnerSourceURL *string `json:"PartnerSourceUrl,omitempty"`
}

// DMA is a designated market area (US locations only)
type DMA struct {
	ID          string `json:"ID"`
	EnglishName string `json:"EnglishName"`
}

// Details is the block returned when a search is issued with details=true
type Details struct {
	Key                      string   `json:"Key"`
	StationCode              string   `json:"StationCode"`
	StationGmtOffset         float64  `json:"StationGmtOffset"`
	BandMap                  string   `json:"BandMap"`
	Climo                    string   `json:"Climo"`
	LocalRadar               string   `json:"LocalRadar"`
	MediaRegion              *string  `json:"MediaRegion"`
	Metar                    string   `json:"Metar"`
	NXMetro                  string   `json:"NXMetro"`
	NXState                  string   `json:"NXState"`
	Population               *int64   `json:"Population"`
	PrimaryWarningCountyCode string   `json:"PrimaryWarningCountyCode"`
	PrimaryWarningZoneCode   string   `json:"PrimaryWarningZoneCode"`
	Satellite                string   `json:"Satellite"`
	Synoptic                 string   `json:"Synoptic"`
	MarineStation            string   `json:"MarineStation"`
	MarineStationGMTOffset   *float64 `json:"MarineStationGMTOffset"`
	VideoCode                string   `json:"VideoCode"`
	LocationStem             string   `json:"LocationStem"`
	Sources                  []Source `json:"Sources"`
	CanonicalPostalCode      string   `json:"CanonicalPostalCode"`
	CanonicalLocationKey     string   `json:"CanonicalLocationKey"`
	DMA                      *DMA     `json:"DMA,omitempty"`
}

type ParentCity struct {
	Key           string `json:"Key"`
	LocalizedName string `json:"LocalizedName"`
	EnglishName   string `json:"EnglishName"`
}

// Location is a resolved AccuWeather location
type Location struct {
	Version                int                     `json:"Version"`
	Key                    string                  `json:"Key" validate:"required"`
	Type                   string                  `json:"Type"`
	Rank                   int                     `json:"Rank"`
	LocalizedName          string                  `json:"LocalizedName" validate:"required"`
	EnglishName            string                  `json:"EnglishName"`
	PrimaryPostalCode      string                  `json:"PrimaryPostalCode"`
	Region                 Region                  `json:"Region"`
	Country                Country                 `json:"Country"`
	AdministrativeArea     AdministrativeArea      `json:"AdministrativeArea"`
	TimeZone               TimeZone                `json:"TimeZone"`
	GeoPosition            GeoPosition             `json:"GeoPosition"`
	IsAlias                bool                    `json:"IsAlias"`
	SupplementalAdminAreas []SupplementalAdminArea `json:"SupplementalAdminAreas"`
	DataSets               []string                `json:"DataSets"`
	Details                *Details                `json:"Details,omitempty"`
	ParentCity             *ParentCity             `json:"ParentCity,omitempty"`
}

// DisplayName returns "<name>, <administrative area>, <country>" skipping empty parts
func (l *Location) DisplayName() string {
	name := l.LocalizedName
	if l.AdministrativeArea.LocalizedName != "" {
		name += ", " + l.AdministrativeArea.LocalizedName
	}
	if l.Country.LocalizedName != "" {
		name += ", " + l.Country.LocalizedName
	}
	return name
}

// ParseLocations decodes a search response into its candidate records.
// List responses keep their order; a single object (geoposition search) becomes a one-element slice.
// A JSON null (geoposition search with no match) yields no candidates.
func ParseLocations(body []byte) ([]Location, error) {
	var candidates []Location

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return candidates, nil
	}

	switch validation.PayloadShape(body) {
	case '[':
		if err := validation.DecodePayload("location", body, &candidates); err != nil {
			return nil, err
		}
	case '{':
		var single Location
		if err := validation.DecodePayload("location", body, &single); err != nil {
			return nil, err
		}
		candidates = []Location{single}
	default:
		return nil, errors.NewMalformedResponseError("location payload is neither a JSON object nor a list", nil)
	}

	for i := range candidates {
		if err := validation.ValidatePayload(fmt.Sprintf("location[%d]", i), &candidates[i]); err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// ParseLocation returns the canonical (rank-highest, first) record of a search response
func ParseLocation(body []byte) (*Location, error) {
	candidates, err := ParseLocations(body)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.NewLocationNotFoundError("location search returned no results")
	}
	canonical := candidates[0]
	return &canonical, nil
}
