package service

import (
	"context"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
)

// SearchService validates restaurant searches, runs them upstream and shapes the result.
type SearchService struct {
	searcher  BusinessSearcher
	formatter *Formatter
	defaults  config.SearchDefaults
}

// NewSearchService wires a search service.
func NewSearchService(searcher BusinessSearcher, formatter *Formatter, defaults config.SearchDefaults) *SearchService {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return &SearchService{searcher: searcher, formatter: formatter, defaults: defaults}
}

// Search returns either a dto.RestaurantListResponse or a dto.MapViewResponse.
func (s *SearchService) Search(ctx context.Context, params dto.SearchParams, requestID string) (any, error) {
	if err := ValidateSearchParams(params); err != nil {
		return nil, err
	}
	params = ApplyDefaults(params, s.defaults)

	payload, err := s.searcher.Search(ctx, params, requestID)
	if err != nil {
		return nil, err
	}
	return s.formatter.Format(payload, params), nil
}
