package entity

import "encoding/json"

// SearchPayload is the body returned by the Yelp business search endpoint.
type SearchPayload struct {
	Businesses []Business `json:"businesses" validate:"dive"`
	Total      *int       `json:"total,omitempty"`
	Region     *Region    `json:"region,omitempty"`
}

// Business represents a single upstream business record.
type Business struct {
	ID           string          `json:"id" validate:"required"`
	Alias        string          `json:"alias"`
	Name         string          `json:"name" validate:"required"`
	ImageURL     *string         `json:"image_url,omitempty"`
	IsClosed     bool            `json:"is_closed"`
	URL          string          `json:"url"`
	ReviewCount  int             `json:"review_count"`
	Categories   []Category      `json:"categories"`
	Rating       float64         `json:"rating"`
	Coordinates  *Coordinates    `json:"coordinates,omitempty"`
	Transactions []string        `json:"transactions,omitempty"`
	Price        *string         `json:"price,omitempty"`
	Location     *Location       `json:"location,omitempty"`
	Phone        string          `json:"phone"`
	DisplayPhone string          `json:"display_phone"`
	Distance     *float64        `json:"distance,omitempty"`
	Photos       []string        `json:"photos,omitempty"`
	Hours        []BusinessHours `json:"hours,omitempty"`
	Attributes   json.RawMessage `json:"attributes,omitempty"`
}

// Category is a Yelp category alias/title pair.
type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// Coordinates holds a latitude/longitude pair. Yelp sends nulls for unplaced businesses.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Valid reports whether both axes are present.
func (c *Coordinates) Valid() bool {
	return c != nil && c.Latitude != nil && c.Longitude != nil
}

// Location is the postal address of a business.
type Location struct {
	Address1       *string  `json:"address1,omitempty"`
	Address2       *string  `json:"address2,omitempty"`
	Address3       *string  `json:"address3,omitempty"`
	City           *string  `json:"city,omitempty"`
	ZipCode        *string  `json:"zip_code,omitempty"`
	Country        *string  `json:"country,omitempty"`
	State          *string  `json:"state,omitempty"`
	DisplayAddress []string `json:"display_address"`
	CrossStreets   *string  `json:"cross_streets,omitempty"`
}

// BusinessHours lists opening windows of one hour type.
type BusinessHours struct {
	HourType  string     `json:"hour_type"`
	Open      []OpenSpan `json:"open"`
	IsOpenNow bool       `json:"is_open_now"`
}

// OpenSpan is one opening window within a week.
type OpenSpan struct {
	Day         int    `json:"day"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsOverNight bool   `json:"is_overnight"`
}

// Region carries the center of the searched area.
type Region struct {
	Center *Coordinates `json:"center,omitempty"`
}
