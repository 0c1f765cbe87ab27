package search

import (
	"context"

	categoryRepo "localspot/database/repository/category"
	providerRepo "localspot/database/repository/provider"
	"localspot/models"
)

// SearchService runs the provider search pipeline and the autocomplete
// suggestion merge. Implementations are stateless per request; every call
// recomputes from the current store state.
type SearchService interface {
	// Search returns active providers matching the request, ranked by rating.
	Search(ctx context.Context, req models.SearchRequest) ([]models.Provider, error)
	// Suggest returns merged provider and category autocomplete entries for
	// the query. Queries shorter than two characters yield an empty list
	// without any store access.
	Suggest(ctx context.Context, query string) ([]models.Suggestion, error)
}

// Recorder receives search telemetry. Implementations must not fail the
// search on recording errors.
type Recorder interface {
	RecordSearch(ctx context.Context, query string, failed bool)
}

// DefaultSearchService is the production implementation.
type DefaultSearchService struct {
	Providers  providerRepo.ProviderRepository
	Categories categoryRepo.CategoryRepository
	// Recorder is optional; nil disables search telemetry.
	Recorder Recorder
	// SuggestionLimit caps each suggestion sub-query independently.
	SuggestionLimit int64
	PriceMode       PriceMatchMode
}
