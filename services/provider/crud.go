package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	categoryRepo "localspot/database/repository/category"
	"localspot/models"

	"github.com/google/uuid"
)

func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProviderService) ListActive(ctx context.Context) ([]models.Provider, error) {
	providers, err := s.Repo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers, nil
}

// CreateProvider validates the payload, denormalizes the category onto the
// document, parses the price list, and inserts the record as active.
func (s *DefaultProviderService) CreateProvider(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	if err := s.prepare(ctx, p); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.IsActive = true
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return p, nil
}

// UpdateProvider replaces the editable fields of an existing provider. Rating
// state, reviews, active flag and creation time are preserved from the stored
// record; the category is re-denormalized so renames propagate.
func (s *DefaultProviderService) UpdateProvider(ctx context.Context, id string, p *models.Provider) (*models.Provider, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, p); err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.IsActive = existing.IsActive
	p.RatingAverage = existing.RatingAverage
	p.RatingCount = existing.RatingCount
	p.Reviews = existing.Reviews
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update provider %s: %w", id, err)
	}
	return p, nil
}

func (s *DefaultProviderService) SetActive(ctx context.Context, id string, active bool) error {
	return s.Repo.SetActive(ctx, id, active)
}

func (s *DefaultProviderService) DeleteProvider(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// prepare validates the payload and fills derived fields.
func (s *DefaultProviderService) prepare(ctx context.Context, p *models.Provider) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.CategoryID == "" {
		return ValidationError{Field: "categoryId", Reason: "must not be empty"}
	}
	cat, err := s.Categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrNotFound) {
			return ValidationError{Field: "categoryId", Reason: "unknown category"}
		}
		return fmt.Errorf("resolve category %s: %w", p.CategoryID, err)
	}
	p.Category = cat
	p.NormalizePrices()
	return nil
}
