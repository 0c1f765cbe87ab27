package search

import (
	"context"
	"fmt"
	"strings"

	providerRepo "localspot/database/repository/provider"
	"localspot/models"
)

// Search runs the full pipeline: normalize, match against the store, apply
// the price filter, rank. A store failure surfaces as an error with no
// partial result; a failed price filter never falls back to unfiltered rows.
func (s *DefaultSearchService) Search(ctx context.Context, req models.SearchRequest) ([]models.Provider, error) {
	query := NormalizeQuery(req.Query)

	var price *models.PriceRange
	if req.PriceRange != nil {
		if req.PriceRange.Min == nil || req.PriceRange.Max == nil {
			return nil, ValidationError{Field: "priceRange", Reason: "both min and max are required"}
		}
		price = &models.PriceRange{Min: *req.PriceRange.Min, Max: *req.PriceRange.Max}
	}

	filter := providerRepo.SearchFilter{
		Query:      query,
		CategoryID: strings.TrimSpace(req.Category),
		Location:   strings.TrimSpace(req.Location),
	}
	providers, err := s.Providers.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("provider search failed: %w", err)
	}

	providers = FilterByPrice(providers, price, s.PriceMode)
	RankByRating(providers)

	if s.Recorder != nil {
		s.Recorder.RecordSearch(ctx, query, len(providers) == 0)
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers, nil
}
