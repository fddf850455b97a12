package dto

import (
	"encoding/json"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/entity"
)

// Restaurant is the detailed list-view projection of a business.
type Restaurant struct {
	ID           string                 `json:"id"`
	Alias        string                 `json:"alias"`
	Name         string                 `json:"name"`
	ImageURL     *string                `json:"image_url"`
	IsClosed     bool                   `json:"is_closed"`
	URL          string                 `json:"url"`
	ReviewCount  int                    `json:"review_count"`
	Categories   []entity.Category      `json:"categories"`
	Rating       float64                `json:"rating"`
	Coordinates  *entity.Coordinates    `json:"coordinates"`
	Transactions []string               `json:"transactions"`
	Price        *string                `json:"price"`
	Location     *entity.Location       `json:"location"`
	Phone        string                 `json:"phone"`
	DisplayPhone string                 `json:"display_phone"`
	Distance     *float64               `json:"distance"`
	Photos       []string               `json:"photos"`
	Hours        []entity.BusinessHours `json:"hours"`
	Attributes   json.RawMessage        `json:"attributes"`
}

// RestaurantListResponse is returned for view_type=list.
type RestaurantListResponse struct {
	Restaurants []Restaurant   `json:"restaurants"`
	Total       int            `json:"total"`
	Region      *entity.Region `json:"region"`
	Offset      int            `json:"offset"`
	Limit       int            `json:"limit"`
	Location    string         `json:"location"`
}

// MapLocation is the reduced map-view projection of a business.
type MapLocation struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Coordinates *entity.Coordinates `json:"coordinates"`
	Rating      float64             `json:"rating"`
	Price       *string             `json:"price"`
	Categories  []string            `json:"categories"`
	ImageURL    *string             `json:"image_url"`
}

// Bounds is the bounding box of every located map point.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// MapViewResponse is returned for view_type=map.
type MapViewResponse struct {
	Locations []MapLocation  `json:"locations"`
	Total     int            `json:"total"`
	Region    *entity.Region `json:"region"`
	Bounds    *Bounds        `json:"bounds,omitempty"`
}
