package provider

import (
	"context"

	categoryRepo "localspot/database/repository/category"
	providerRepo "localspot/database/repository/provider"
	"localspot/models"
)

// ProviderService manages the provider lifecycle: admin CRUD, soft
// deactivation, and review-driven rating recomputation.
type ProviderService interface {
	// GetProviderByID returns the full record, including inactive providers.
	// Only list and search surfaces enforce the active flag.
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	// ListActive returns all active providers sorted by rating.
	ListActive(ctx context.Context) ([]models.Provider, error)
	CreateProvider(ctx context.Context, p *models.Provider) (*models.Provider, error)
	UpdateProvider(ctx context.Context, id string, p *models.Provider) (*models.Provider, error)
	// SetActive toggles search/suggestion visibility without deleting data.
	SetActive(ctx context.Context, id string, active bool) error
	DeleteProvider(ctx context.Context, id string) error
	// AddReview appends a review and recomputes the stored rating average.
	AddReview(ctx context.Context, id string, review models.Review) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo       providerRepo.ProviderRepository
	Categories categoryRepo.CategoryRepository
}
