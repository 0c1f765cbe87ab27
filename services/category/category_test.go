package category_test

import (
	"context"
	"testing"

	categoryRepo "localspot/database/repository/category"
	"localspot/models"
	"localspot/services/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCategoryRepo struct {
	byID map[string]*models.Category
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, categoryRepo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCategoryRepo) SuggestByName(ctx context.Context, query string, limit int64) ([]models.Category, error) {
	return nil, nil
}

func (r *memCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Update(ctx context.Context, c *models.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Tech Repair":     "tech-repair",
		"Food & Drinks":   "food-&-drinks",
		"  Stationery  ":  "stationery",
		"Home   Services": "home-services",
	}
	for in, want := range cases {
		assert.Equal(t, want, category.Slugify(in), "Slugify(%q)", in)
	}
}

func TestCreateCategory_DerivesID(t *testing.T) {
	repo := &memCategoryRepo{byID: map[string]*models.Category{}}
	svc := &category.DefaultCategoryService{Repo: repo}

	cat, err := svc.Create(context.Background(), &models.Category{Name: "Tech Repair"})
	require.NoError(t, err)
	assert.Equal(t, "tech-repair", cat.ID)
	assert.False(t, cat.CreatedAt.IsZero())
	assert.Contains(t, repo.byID, "tech-repair")
}

func TestCreateCategory_KeepsExplicitID(t *testing.T) {
	repo := &memCategoryRepo{byID: map[string]*models.Category{}}
	svc := &category.DefaultCategoryService{Repo: repo}

	cat, err := svc.Create(context.Background(), &models.Category{ID: "fixers", Name: "Tech Repair"})
	require.NoError(t, err)
	assert.Equal(t, "fixers", cat.ID)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	svc := &category.DefaultCategoryService{Repo: &memCategoryRepo{byID: map[string]*models.Category{}}}

	_, err := svc.Create(context.Background(), &models.Category{Name: "  "})
	var vErr category.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestUpdateCategory_PreservesIDAndCreatedAt(t *testing.T) {
	repo := &memCategoryRepo{byID: map[string]*models.Category{}}
	svc := &category.DefaultCategoryService{Repo: repo}

	created, err := svc.Create(context.Background(), &models.Category{Name: "Fashion"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "fashion", &models.Category{
		ID:   "something-else",
		Name: "Fashion & Clothing",
	})
	require.NoError(t, err)
	assert.Equal(t, "fashion", updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Fashion & Clothing", updated.Name)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc := &category.DefaultCategoryService{Repo: &memCategoryRepo{byID: map[string]*models.Category{}}}

	_, err := svc.Update(context.Background(), "nope", &models.Category{Name: "X"})
	assert.ErrorIs(t, err, categoryRepo.ErrNotFound)
}
