package providerRepo

import (
	"context"
	"errors"
	"time"

	"localspot/models"
)

// ErrNotFound is returned when a provider lookup matches no document.
var ErrNotFound = errors.New("provider not found")

// SearchFilter defines criteria for a provider search. Zero-valued fields
// exclude nothing; IsActive is always enforced by implementations.
type SearchFilter struct {
	Query      string
	CategoryID string
	Location   string
	Limit      int64
}

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID, active or not.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetAllActive retrieves all active providers sorted by rating.
	GetAllActive(ctx context.Context) ([]models.Provider, error)
	// Search returns active providers matching the filter, sorted by rating
	// descending with id ascending as the tie-break.
	Search(ctx context.Context, filter SearchFilter) ([]models.Provider, error)
	// Suggest returns up to limit active providers whose name or description
	// contains query, or whose services list has an element equal to it.
	Suggest(ctx context.Context, query string, limit int64) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(ctx context.Context, provider *models.Provider) error
	// Update replaces an existing provider record.
	Update(ctx context.Context, provider *models.Provider) error
	// SetActive toggles a provider's visibility flag.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a provider record by its ID.
	Delete(ctx context.Context, id string) error
	// AddReview appends a review and stores the recomputed rating.
	AddReview(ctx context.Context, id string, review models.Review, newAverage float64, newCount int) error
	// CountByActive counts providers with the given active flag.
	CountByActive(ctx context.Context, active bool) (int64, error)
	// CountCreatedSince counts providers created after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
