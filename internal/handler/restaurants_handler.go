package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
	middlewarepkg "github.com/lakshyaag/restaurant-recommender-mvp/internal/middleware"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/service"
)

// RestaurantSearcher runs a restaurant search and returns the shaped response.
type RestaurantSearcher interface {
	Search(ctx context.Context, params dto.SearchParams, requestID string) (any, error)
}

// RestaurantsHandler exposes the restaurant search endpoint.
type RestaurantsHandler struct {
	searcher RestaurantSearcher
}

// NewRestaurantsHandler creates a new handler instance.
func NewRestaurantsHandler(searcher RestaurantSearcher) *RestaurantsHandler {
	return &RestaurantsHandler{searcher: searcher}
}

// Search handles GET /restaurants requests.
func (h *RestaurantsHandler) Search(c echo.Context) error {
	params, err := parseSearchParams(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.searcher.Search(c.Request().Context(), params, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, result)
}

func parseSearchParams(c echo.Context) (dto.SearchParams, error) {
	q := queryReader{c: c}
	params := dto.SearchParams{
		Location:          q.optString("location"),
		Latitude:          q.optFloat("latitude"),
		Longitude:         q.optFloat("longitude"),
		Term:              q.optString("term"),
		Radius:            q.optInt("radius"),
		Categories:        q.optString("categories"),
		Locale:            q.optString("locale"),
		Price:             q.optString("price"),
		OpenNow:           q.optBool("open_now"),
		OpenAt:            q.optInt64("open_at"),
		Attributes:        q.optString("attributes"),
		Limit:             q.optInt("limit"),
		Offset:            q.optInt("offset"),
		ReservationDate:   q.optString("reservation_date"),
		ReservationTime:   q.optString("reservation_time"),
		ReservationCovers: q.optInt("reservation_covers"),
		ViewType:          dto.ViewType(strings.ToLower(strings.TrimSpace(c.QueryParam("view_type")))),
	}
	if sortBy := q.optString("sort_by"); sortBy != nil {
		value := dto.SortBy(strings.ToLower(*sortBy))
		params.SortBy = &value
	}
	if q.err != nil {
		return dto.SearchParams{}, q.err
	}
	return params, nil
}

// queryReader parses optional query parameters. Empty values count as absent; the first
// malformed value is kept in err.
type queryReader struct {
	c   echo.Context
	err error
}

func (q *queryReader) raw(name string) (string, bool) {
	value := strings.TrimSpace(q.c.QueryParam(name))
	return value, value != ""
}

func (q *queryReader) fail(name, value string) {
	if q.err == nil {
		q.err = fmt.Errorf("invalid value for '%s': %q", name, value)
	}
}

func (q *queryReader) optString(name string) *string {
	value, ok := q.raw(name)
	if !ok {
		return nil
	}
	return &value
}

func (q *queryReader) optInt(name string) *int {
	value, ok := q.raw(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		q.fail(name, value)
		return nil
	}
	return &parsed
}

func (q *queryReader) optInt64(name string) *int64 {
	value, ok := q.raw(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		q.fail(name, value)
		return nil
	}
	return &parsed
}

func (q *queryReader) optFloat(name string) *float64 {
	value, ok := q.raw(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		q.fail(name, value)
		return nil
	}
	return &parsed
}

func (q *queryReader) optBool(name string) *bool {
	value, ok := q.raw(name)
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		q.fail(name, value)
		return nil
	}
	return &parsed
}

var _ RestaurantSearcher = (*service.SearchService)(nil)
