package provider_test

import (
	"context"
	"strings"
	"testing"
	"time"

	categoryRepo "localspot/database/repository/category"
	providerRepo "localspot/database/repository/provider"
	"localspot/models"
	"localspot/services/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProviderRepo struct {
	byID map[string]*models.Provider

	created     *models.Provider
	updated     *models.Provider
	lastReview  *models.Review
	lastAverage float64
	lastCount   int
}

func (r *stubProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProviderRepo) GetAllActive(ctx context.Context) ([]models.Provider, error) {
	return nil, nil
}

func (r *stubProviderRepo) Search(ctx context.Context, filter providerRepo.SearchFilter) ([]models.Provider, error) {
	return nil, nil
}

func (r *stubProviderRepo) Suggest(ctx context.Context, query string, limit int64) ([]models.Provider, error) {
	return nil, nil
}

func (r *stubProviderRepo) Create(ctx context.Context, p *models.Provider) error {
	r.created = p
	return nil
}

func (r *stubProviderRepo) Update(ctx context.Context, p *models.Provider) error {
	r.updated = p
	return nil
}

func (r *stubProviderRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

func (r *stubProviderRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *stubProviderRepo) AddReview(ctx context.Context, id string, review models.Review, newAverage float64, newCount int) error {
	r.lastReview = &review
	r.lastAverage = newAverage
	r.lastCount = newCount
	return nil
}

func (r *stubProviderRepo) CountByActive(ctx context.Context, active bool) (int64, error) {
	return 0, nil
}

func (r *stubProviderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

type stubCategoryRepo struct {
	byID map[string]*models.Category
}

func (r *stubCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, categoryRepo.ErrNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) { return nil, nil }

func (r *stubCategoryRepo) SuggestByName(ctx context.Context, query string, limit int64) ([]models.Category, error) {
	return nil, nil
}

func (r *stubCategoryRepo) Create(ctx context.Context, c *models.Category) error { return nil }
func (r *stubCategoryRepo) Update(ctx context.Context, c *models.Category) error { return nil }
func (r *stubCategoryRepo) Delete(ctx context.Context, id string) error          { return nil }

func newService(repo *stubProviderRepo) *provider.DefaultProviderService {
	return &provider.DefaultProviderService{
		Repo: repo,
		Categories: &stubCategoryRepo{byID: map[string]*models.Category{
			"food": {ID: "food", Name: "Food & Drinks"},
		}},
	}
}

func TestCreateProvider_DenormalizesCategoryAndParsesPrices(t *testing.T) {
	repo := &stubProviderRepo{byID: map[string]*models.Provider{}}
	svc := newService(repo)

	created, err := svc.CreateProvider(context.Background(), &models.Provider{
		Name:       "  John's Restaurant ",
		CategoryID: "food",
		Prices:     []string{"500", "1500-3000"},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "John's Restaurant", created.Name)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Food & Drinks", created.Category.Name)
	require.Len(t, created.PriceEntries, 2)
	assert.False(t, created.PriceEntries[0].IsRange)
	assert.True(t, created.PriceEntries[1].IsRange)
}

func TestCreateProvider_UnknownCategory(t *testing.T) {
	repo := &stubProviderRepo{byID: map[string]*models.Provider{}}
	svc := newService(repo)

	_, err := svc.CreateProvider(context.Background(), &models.Provider{
		Name:       "Shop",
		CategoryID: "nope",
	})
	var vErr provider.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "categoryId", vErr.Field)
	assert.Nil(t, repo.created, "invalid payload must not reach the store")
}

func TestCreateProvider_EmptyName(t *testing.T) {
	svc := newService(&stubProviderRepo{byID: map[string]*models.Provider{}})

	_, err := svc.CreateProvider(context.Background(), &models.Provider{
		Name:       "   ",
		CategoryID: "food",
	})
	var vErr provider.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestUpdateProvider_PreservesRatingState(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubProviderRepo{byID: map[string]*models.Provider{
		"p1": {
			ID:            "p1",
			Name:          "Old Name",
			CategoryID:    "food",
			IsActive:      false,
			RatingAverage: 4.2,
			RatingCount:   10,
			Reviews:       []models.Review{{Rating: 5}},
			CreatedAt:     createdAt,
		},
	}}
	svc := newService(repo)

	updated, err := svc.UpdateProvider(context.Background(), "p1", &models.Provider{
		Name:       "New Name",
		CategoryID: "food",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.False(t, updated.IsActive, "active flag is not editable through update")
	assert.Equal(t, 4.2, updated.RatingAverage)
	assert.Equal(t, 10, updated.RatingCount)
	assert.Len(t, updated.Reviews, 1)
	assert.Equal(t, createdAt, updated.CreatedAt)
}

func TestAddReview_RecomputesAverage(t *testing.T) {
	repo := &stubProviderRepo{byID: map[string]*models.Provider{
		"p1": {ID: "p1", RatingAverage: 4.0, RatingCount: 3},
	}}
	svc := newService(repo)

	updated, err := svc.AddReview(context.Background(), "p1", models.Review{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	// (4.0*3 + 5) / 4 = 4.25
	assert.InDelta(t, 4.25, updated.RatingAverage, 1e-9)
	assert.Equal(t, 4, updated.RatingCount)
	assert.Equal(t, 4.25, repo.lastAverage)
	assert.Equal(t, 4, repo.lastCount)
	require.NotNil(t, repo.lastReview)
	assert.False(t, repo.lastReview.CreatedAt.IsZero())
}

func TestAddReview_FirstReview(t *testing.T) {
	repo := &stubProviderRepo{byID: map[string]*models.Provider{
		"p1": {ID: "p1"},
	}}
	svc := newService(repo)

	updated, err := svc.AddReview(context.Background(), "p1", models.Review{Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.RatingAverage)
	assert.Equal(t, 1, updated.RatingCount)
}

func TestAddReview_RatingBounds(t *testing.T) {
	repo := &stubProviderRepo{byID: map[string]*models.Provider{
		"p1": {ID: "p1"},
	}}
	svc := newService(repo)

	for _, rating := range []float64{0, 0.5, 5.5, 6, -1} {
		_, err := svc.AddReview(context.Background(), "p1", models.Review{Rating: rating})
		var vErr provider.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "rating", vErr.Field)
	}
	assert.Nil(t, repo.lastReview, "rejected ratings must not reach the store")
}

func TestAddReview_UnknownProvider(t *testing.T) {
	svc := newService(&stubProviderRepo{byID: map[string]*models.Provider{}})

	_, err := svc.AddReview(context.Background(), "nope", models.Review{Rating: 4})
	assert.ErrorIs(t, err, providerRepo.ErrNotFound)
}

func TestValidationError_Message(t *testing.T) {
	err := provider.ValidationError{Field: "name", Reason: "must not be empty"}
	assert.True(t, strings.Contains(err.Error(), "name"))
}
