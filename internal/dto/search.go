package dto

// SortBy enumerates the ordering modes understood by the search API.
type SortBy string

const (
	SortBestMatch   SortBy = "best_match"
	SortRating      SortBy = "rating"
	SortReviewCount SortBy = "review_count"
	SortDistance    SortBy = "distance"
)

// ViewType selects which response shape is rendered.
type ViewType string

const (
	ViewList ViewType = "list"
	ViewMap  ViewType = "map"
)

// SearchParams contains the query parameters accepted by GET /restaurants.
// Nil pointers mean "not supplied" and are never forwarded upstream.
type SearchParams struct {
	Location  *string  `validate:"omitempty,min=1,max=250"`
	Latitude  *float64 `validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `validate:"omitempty,gte=-180,lte=180"`

	Term       *string
	Radius     *int `validate:"omitempty,gte=0,lte=40000"`
	Categories *string
	Locale     *string

	Price      *string
	OpenNow    *bool
	OpenAt     *int64
	Attributes *string

	SortBy *SortBy `validate:"omitempty,oneof=best_match rating review_count distance"`
	Limit  *int    `validate:"omitempty,gte=1,lte=50"`
	Offset *int    `validate:"omitempty,gte=0"`

	ReservationDate   *string
	ReservationTime   *string
	ReservationCovers *int `validate:"omitempty,gte=1,lte=10"`

	ViewType ViewType `validate:"omitempty,oneof=list map"`
}

// HasLocation reports whether at least one location signal is present.
func (p SearchParams) HasLocation() bool {
	if p.Location != nil && *p.Location != "" {
		return true
	}
	return p.Latitude != nil && p.Longitude != nil
}
