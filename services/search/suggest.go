package search

import (
	"context"
	"fmt"

	"localspot/models"
)

// DefaultSuggestionLimit caps each suggestion sub-query when no configured
// limit is set.
const DefaultSuggestionLimit = 5

// Suggest merges a capped provider sub-match with a capped category name
// match. Provider entries always precede category entries; the two lookups
// are independent, with no cross-deduplication and no combined re-ranking.
// Any store failure aborts the whole merge.
func (s *DefaultSearchService) Suggest(ctx context.Context, rawQuery string) ([]models.Suggestion, error) {
	query := NormalizeQuery(rawQuery)
	if SuggestionQueryTooShort(query) {
		return []models.Suggestion{}, nil
	}

	limit := s.SuggestionLimit
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	providers, err := s.Providers.Suggest(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("provider suggestions failed: %w", err)
	}
	categories, err := s.Categories.SuggestByName(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("category suggestions failed: %w", err)
	}

	suggestions := make([]models.Suggestion, 0, len(providers)+len(categories))
	for _, p := range providers {
		sg := models.Suggestion{
			ID:      p.ID,
			Name:    p.Name,
			Address: p.Address,
			Type:    models.SuggestionTypeProvider,
		}
		if p.Category != nil {
			sg.Category = p.Category.Name
		}
		suggestions = append(suggestions, sg)
	}
	for _, cat := range categories {
		suggestions = append(suggestions, models.Suggestion{
			ID:   cat.ID,
			Name: cat.Name,
			Type: models.SuggestionTypeCategory,
		})
	}
	return suggestions, nil
}
