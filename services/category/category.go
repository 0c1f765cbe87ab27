package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	categoryRepo "localspot/database/repository/category"
	"localspot/models"
)

// CategoryService manages the category taxonomy.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, cat *models.Category) (*models.Category, error)
	Update(ctx context.Context, id string, cat *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// ValidationError indicates a malformed category payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DefaultCategoryService is the production implementation.
type DefaultCategoryService struct {
	Repo categoryRepo.CategoryRepository
}

func (s *DefaultCategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *DefaultCategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create inserts a category. When no id is supplied one is derived from the
// name ("Tech Repair" becomes "tech-repair").
func (s *DefaultCategoryService) Create(ctx context.Context, cat *models.Category) (*models.Category, error) {
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if cat.ID == "" {
		cat.ID = Slugify(cat.Name)
	}
	cat.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *DefaultCategoryService) Update(ctx context.Context, id string, cat *models.Category) (*models.Category, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}
	cat.ID = existing.ID
	cat.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, cat); err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	return cat, nil
}

func (s *DefaultCategoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Slugify lowercases a name and collapses whitespace runs into hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
