package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/entity"
	middlewarepkg "github.com/lakshyaag/restaurant-recommender-mvp/internal/middleware"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/service"
)

type restaurantSearcherStub struct {
	params    dto.SearchParams
	requestID string
	result    any
	err       error
	called    bool
}

func (s *restaurantSearcherStub) Search(_ context.Context, params dto.SearchParams, requestID string) (any, error) {
	s.called = true
	s.params = params
	s.requestID = requestID
	return s.result, s.err
}

type businessSearcherStub struct {
	payload *entity.SearchPayload
	err     error
}

func (s businessSearcherStub) Search(context.Context, dto.SearchParams, string) (*entity.SearchPayload, error) {
	return s.payload, s.err
}

const torontoSearchPayload = `{
  "businesses": [
    {"id": "canoe", "name": "Canoe", "rating": 4.5, "price": "$$$$", "image_url": "https://img/canoe.jpg",
     "coordinates": {"latitude": 43.6479, "longitude": -79.3816},
     "categories": [{"alias": "canadian", "title": "Canadian (New)"}]},
    {"id": "pai", "name": "Pai", "rating": 4.4, "price": "$$",
     "coordinates": {"latitude": 43.6477, "longitude": -79.3884},
     "categories": [{"alias": "thai", "title": "Thai"}]}
  ],
  "total": 240,
  "region": {"center": {"latitude": 43.65, "longitude": -79.38}}
}`

func newRestaurantsHandlerWithPayload(t *testing.T, raw string) *RestaurantsHandler {
	t.Helper()
	var payload entity.SearchPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	defaults := config.SearchDefaults{Location: "Toronto", Term: "restaurant", Limit: 20, SortBy: "best_match"}
	svc := service.NewSearchService(businessSearcherStub{payload: &payload}, service.NewFormatter(), defaults)
	return NewRestaurantsHandler(svc)
}

func performSearch(handler *RestaurantsHandler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middlewarepkg.ContextKeyRequestID, "req-1")
	_ = handler.Search(c)
	return rec
}

func TestRestaurantsHandler_MissingLocation(t *testing.T) {
	handler := newRestaurantsHandlerWithPayload(t, torontoSearchPayload)

	for _, target := range []string{"/restaurants", "/restaurants?term=sushi", "/restaurants?latitude=43.6"} {
		rec := performSearch(handler, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}

		var payload ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if payload.Status != "error" || payload.Detail == "" {
			t.Fatalf("unexpected error body: %+v", payload)
		}
	}
}

func TestRestaurantsHandler_MalformedQuery(t *testing.T) {
	tests := map[string]string{
		"limit":     "/restaurants?location=Toronto&limit=ten",
		"latitude":  "/restaurants?latitude=north&longitude=-79.3",
		"open_now":  "/restaurants?location=Toronto&open_now=maybe",
		"open_at":   "/restaurants?location=Toronto&open_at=noon",
		"out range": "/restaurants?location=Toronto&limit=51",
		"sort_by":   "/restaurants?location=Toronto&sort_by=cheapest",
		"view_type": "/restaurants?location=Toronto&view_type=globe",
	}

	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			rec := performSearch(newRestaurantsHandlerWithPayload(t, torontoSearchPayload), target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRestaurantsHandler_ParsesQuery(t *testing.T) {
	stub := &restaurantSearcherStub{result: map[string]string{"ok": "yes"}}
	handler := NewRestaurantsHandler(stub)

	rec := performSearch(handler, "/restaurants?location=Toronto&latitude=&radius=1500&open_now=true&sort_by=RATING&view_type=Map&open_at=1700000000")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !stub.called {
		t.Fatalf("expected searcher to be called")
	}
	p := stub.params
	if p.Location == nil || *p.Location != "Toronto" {
		t.Fatalf("unexpected location: %v", p.Location)
	}
	if p.Latitude != nil {
		t.Fatalf("expected empty latitude to be treated as absent")
	}
	if p.Radius == nil || *p.Radius != 1500 {
		t.Fatalf("unexpected radius: %v", p.Radius)
	}
	if p.OpenNow == nil || !*p.OpenNow {
		t.Fatalf("unexpected open_now: %v", p.OpenNow)
	}
	if p.OpenAt == nil || *p.OpenAt != 1700000000 {
		t.Fatalf("unexpected open_at: %v", p.OpenAt)
	}
	if p.SortBy == nil || *p.SortBy != dto.SortRating {
		t.Fatalf("unexpected sort_by: %v", p.SortBy)
	}
	if p.ViewType != dto.ViewMap {
		t.Fatalf("unexpected view_type: %q", p.ViewType)
	}
	if p.Limit != nil || p.Offset != nil {
		t.Fatalf("expected limit and offset to be left for defaults")
	}
	if stub.requestID != "req-1" {
		t.Fatalf("expected request id to be forwarded, got %q", stub.requestID)
	}
}

func TestRestaurantsHandler_ListView(t *testing.T) {
	rec := performSearch(newRestaurantsHandlerWithPayload(t, torontoSearchPayload), "/restaurants?location=Toronto&limit=7&offset=14")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload dto.RestaurantListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Limit != 7 || payload.Offset != 14 {
		t.Fatalf("expected limit/offset echoed, got %d/%d", payload.Limit, payload.Offset)
	}
	if payload.Total != 240 {
		t.Fatalf("expected upstream total, got %d", payload.Total)
	}
	if payload.Location != "Toronto" {
		t.Fatalf("unexpected location label: %q", payload.Location)
	}
	if len(payload.Restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(payload.Restaurants))
	}
	if payload.Restaurants[1].Price == nil || *payload.Restaurants[1].Price != "2" {
		t.Fatalf("expected $$ to map to level 2, got %v", payload.Restaurants[1].Price)
	}
}

func TestRestaurantsHandler_MapView(t *testing.T) {
	rec := performSearch(newRestaurantsHandlerWithPayload(t, torontoSearchPayload), "/restaurants?location=Toronto&view_type=map")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := body["restaurants"]; ok {
		t.Fatalf("map view must not include the list shape")
	}

	var payload struct {
		Locations []struct {
			ID          string             `json:"id"`
			Name        string             `json:"name"`
			Coordinates map[string]float64 `json:"coordinates"`
			Rating      float64            `json:"rating"`
			Categories  []string           `json:"categories"`
		} `json:"locations"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode map payload: %v", err)
	}
	if payload.Total != 240 {
		t.Fatalf("expected total 240, got %d", payload.Total)
	}
	if len(payload.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(payload.Locations))
	}
	first := payload.Locations[0]
	if first.ID != "canoe" || first.Name != "Canoe" || first.Rating != 4.5 {
		t.Fatalf("unexpected first location: %+v", first)
	}
	if first.Coordinates["latitude"] != 43.6479 {
		t.Fatalf("unexpected coordinates: %+v", first.Coordinates)
	}
	if len(first.Categories) != 1 || first.Categories[0] != "Canadian (New)" {
		t.Fatalf("expected category titles, got %+v", first.Categories)
	}
}

func TestRestaurantsHandler_UpstreamFailure(t *testing.T) {
	tests := map[string]error{
		"upstream": &service.UpstreamError{Source: "yelp", Message: "status 401: invalid token"},
		"schema":   &service.SchemaError{Source: "yelp", Err: errors.New("businesses[0].id is required")},
	}

	for name, upstreamErr := range tests {
		t.Run(name, func(t *testing.T) {
			defaults := config.SearchDefaults{Term: "restaurant", Limit: 20, SortBy: "best_match"}
			svc := service.NewSearchService(businessSearcherStub{err: upstreamErr}, nil, defaults)

			rec := performSearch(NewRestaurantsHandler(svc), "/restaurants?location=Toronto")
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
		})
	}
}
