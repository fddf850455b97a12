package service

import (
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
)

const torontoPayload = `{
  "businesses": [
    {
      "id": "b1",
      "alias": "canoe-toronto",
      "name": "Canoe",
      "image_url": "https://img.test/canoe.jpg",
      "is_closed": false,
      "url": "https://yelp.test/canoe",
      "review_count": 812,
      "categories": [{"alias": "canadian", "title": "Canadian (New)"}, {"alias": "newamerican", "title": "American (New)"}],
      "rating": 4.5,
      "coordinates": {"latitude": 43.6479, "longitude": -79.3812},
      "transactions": ["restaurant_reservation"],
      "price": "$$$$",
      "location": {"address1": "66 Wellington St W", "city": "Toronto", "zip_code": "M5K 1H6", "country": "CA", "state": "ON", "display_address": ["66 Wellington St W", "Toronto, ON M5K 1H6"]},
      "phone": "+14163640054",
      "display_phone": "+1 416-364-0054",
      "distance": 512.3
    },
    {
      "id": "b2",
      "alias": "pai-toronto",
      "name": "Pai",
      "is_closed": false,
      "url": "https://yelp.test/pai",
      "review_count": 2300,
      "categories": [{"alias": "thai", "title": "Thai"}],
      "rating": 4.4,
      "coordinates": {"latitude": 43.6477, "longitude": -79.3886},
      "price": "$$",
      "location": {"display_address": ["18 Duncan St", "Toronto, ON M5H 3G8"]},
      "phone": "",
      "display_phone": ""
    },
    {
      "id": "b3",
      "alias": "ghost-kitchen",
      "name": "Ghost Kitchen",
      "is_closed": false,
      "url": "https://yelp.test/ghost",
      "review_count": 3,
      "categories": [],
      "rating": 3.0,
      "coordinates": {"latitude": null, "longitude": null},
      "location": {"display_address": []},
      "phone": "",
      "display_phone": ""
    }
  ],
  "total": 3,
  "region": {"center": {"latitude": 43.65, "longitude": -79.38}}
}`

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sortPtr(v dto.SortBy) *dto.SortBy { return &v }
