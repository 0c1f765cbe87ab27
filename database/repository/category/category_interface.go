package categoryRepo

import (
	"context"
	"errors"

	"localspot/models"
)

// ErrNotFound is returned when a category lookup matches no document.
var ErrNotFound = errors.New("category not found")

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	// GetByID retrieves a category by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Category, error)
	// GetAll retrieves all categories sorted by name.
	GetAll(ctx context.Context) ([]models.Category, error)
	// SuggestByName returns up to limit categories whose name contains query
	// as a case-insensitive substring.
	SuggestByName(ctx context.Context, query string, limit int64) ([]models.Category, error)
	// Create inserts a new category record.
	Create(ctx context.Context, category *models.Category) error
	// Update replaces an existing category record.
	Update(ctx context.Context, category *models.Category) error
	// Delete removes a category record by its ID.
	Delete(ctx context.Context, id string) error
}
