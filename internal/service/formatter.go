package service

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/entity"
)

// Formatter maps upstream search payloads onto the list and map response shapes.
type Formatter struct{}

// NewFormatter returns a response formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders the shape selected by params.ViewType.
func (f *Formatter) Format(payload *entity.SearchPayload, params dto.SearchParams) any {
	if params.ViewType == dto.ViewMap {
		return f.FormatMap(payload)
	}
	return f.FormatList(payload, params)
}

// FormatList maps every business field-for-field and echoes pagination.
func (f *Formatter) FormatList(payload *entity.SearchPayload, params dto.SearchParams) dto.RestaurantListResponse {
	restaurants := make([]dto.Restaurant, 0, len(payload.Businesses))
	for _, b := range payload.Businesses {
		restaurants = append(restaurants, toRestaurant(b))
	}

	resp := dto.RestaurantListResponse{
		Restaurants: restaurants,
		Total:       totalOf(payload),
		Region:      regionOf(payload),
		Offset:      0,
		Limit:       20,
		Location:    locationLabel(params),
	}
	if params.Offset != nil {
		resp.Offset = *params.Offset
	}
	if params.Limit != nil {
		resp.Limit = *params.Limit
	}
	return resp
}

// FormatMap reduces every business to what a map marker needs.
func (f *Formatter) FormatMap(payload *entity.SearchPayload) dto.MapViewResponse {
	locations := make([]dto.MapLocation, 0, len(payload.Businesses))
	var points orb.MultiPoint
	for _, b := range payload.Businesses {
		titles := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			titles = append(titles, c.Title)
		}
		locations = append(locations, dto.MapLocation{
			ID:          b.ID,
			Name:        b.Name,
			Coordinates: b.Coordinates,
			Rating:      b.Rating,
			Price:       PriceLevel(b.Price),
			Categories:  titles,
			ImageURL:    b.ImageURL,
		})
		if b.Coordinates.Valid() {
			points = append(points, orb.Point{*b.Coordinates.Longitude, *b.Coordinates.Latitude})
		}
	}

	return dto.MapViewResponse{
		Locations: locations,
		Total:     totalOf(payload),
		Region:    regionOf(payload),
		Bounds:    boundsOf(points),
	}
}

func toRestaurant(b entity.Business) dto.Restaurant {
	transactions := b.Transactions
	if transactions == nil {
		transactions = []string{}
	}
	categories := b.Categories
	if categories == nil {
		categories = []entity.Category{}
	}
	return dto.Restaurant{
		ID:           b.ID,
		Alias:        b.Alias,
		Name:         b.Name,
		ImageURL:     b.ImageURL,
		IsClosed:     b.IsClosed,
		URL:          b.URL,
		ReviewCount:  b.ReviewCount,
		Categories:   categories,
		Rating:       b.Rating,
		Coordinates:  b.Coordinates,
		Transactions: transactions,
		Price:        PriceLevel(b.Price),
		Location:     b.Location,
		Phone:        b.Phone,
		DisplayPhone: b.DisplayPhone,
		Distance:     b.Distance,
		Photos:       b.Photos,
		Hours:        b.Hours,
		Attributes:   b.Attributes,
	}
}

// totalOf prefers the upstream total and falls back to the number of records.
func totalOf(payload *entity.SearchPayload) int {
	if payload.Total != nil {
		return *payload.Total
	}
	return len(payload.Businesses)
}

func regionOf(payload *entity.SearchPayload) *entity.Region {
	if payload.Region == nil || !payload.Region.Center.Valid() {
		return nil
	}
	return payload.Region
}

func boundsOf(points orb.MultiPoint) *dto.Bounds {
	if len(points) == 0 {
		return nil
	}
	bound := points.Bound()
	return &dto.Bounds{
		South: bound.Min.Lat(),
		West:  bound.Min.Lon(),
		North: bound.Max.Lat(),
		East:  bound.Max.Lon(),
	}
}

func locationLabel(params dto.SearchParams) string {
	if params.Location != nil && *params.Location != "" {
		return *params.Location
	}
	if params.Latitude != nil && params.Longitude != nil {
		return fmt.Sprintf("%s,%s", formatFloat(*params.Latitude), formatFloat(*params.Longitude))
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
