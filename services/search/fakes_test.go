package search_test

import (
	"context"
	"strings"
	"time"

	categoryRepo "localspot/database/repository/category"
	providerRepo "localspot/database/repository/provider"
	"localspot/models"
	"localspot/services/search"
)

// fakeProviderRepo is an in-memory ProviderRepository. It evaluates the same
// exported matcher predicates the Mongo queries mirror, and counts store
// accesses so tests can assert a call never happened.
type fakeProviderRepo struct {
	providers    []models.Provider
	searchCalls  int
	suggestCalls int
	searchErr    error
	suggestErr   error
}

func (f *fakeProviderRepo) Search(ctx context.Context, filter providerRepo.SearchFilter) ([]models.Provider, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []models.Provider
	for _, p := range f.providers {
		if search.MatchesFilter(p, filter) {
			out = append(out, p)
		}
	}
	search.RankByRating(out)
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProviderRepo) Suggest(ctx context.Context, query string, limit int64) ([]models.Provider, error) {
	f.suggestCalls++
	if f.suggestErr != nil {
		return nil, f.suggestErr
	}
	var out []models.Provider
	for _, p := range f.providers {
		if p.IsActive && search.MatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	search.RankByRating(out)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].ID == id {
			return &f.providers[i], nil
		}
	}
	return nil, providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) GetAllActive(ctx context.Context) ([]models.Provider, error) {
	return f.Search(ctx, providerRepo.SearchFilter{})
}

func (f *fakeProviderRepo) Create(ctx context.Context, p *models.Provider) error {
	f.providers = append(f.providers, *p)
	return nil
}

func (f *fakeProviderRepo) Update(ctx context.Context, p *models.Provider) error {
	for i := range f.providers {
		if f.providers[i].ID == p.ID {
			f.providers[i] = *p
			return nil
		}
	}
	return providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) SetActive(ctx context.Context, id string, active bool) error {
	for i := range f.providers {
		if f.providers[i].ID == id {
			f.providers[i].IsActive = active
			return nil
		}
	}
	return providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) Delete(ctx context.Context, id string) error {
	for i := range f.providers {
		if f.providers[i].ID == id {
			f.providers = append(f.providers[:i], f.providers[i+1:]...)
			return nil
		}
	}
	return providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) AddReview(ctx context.Context, id string, review models.Review, newAverage float64, newCount int) error {
	for i := range f.providers {
		if f.providers[i].ID == id {
			f.providers[i].Reviews = append(f.providers[i].Reviews, review)
			f.providers[i].RatingAverage = newAverage
			f.providers[i].RatingCount = newCount
			return nil
		}
	}
	return providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) CountByActive(ctx context.Context, active bool) (int64, error) {
	var n int64
	for _, p := range f.providers {
		if p.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (f *fakeProviderRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	for _, p := range f.providers {
		if p.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository with a call counter on
// the suggest query.
type fakeCategoryRepo struct {
	categories   []models.Category
	suggestCalls int
	suggestErr   error
}

func (f *fakeCategoryRepo) SuggestByName(ctx context.Context, query string, limit int64) ([]models.Category, error) {
	f.suggestCalls++
	if f.suggestErr != nil {
		return nil, f.suggestErr
	}
	var out []models.Category
	for _, cat := range f.categories {
		if strings.Contains(strings.ToLower(cat.Name), strings.ToLower(query)) {
			out = append(out, cat)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, categoryRepo.ErrNotFound
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, cat *models.Category) error {
	f.categories = append(f.categories, *cat)
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, cat *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == cat.ID {
			f.categories[i] = *cat
			return nil
		}
	}
	return categoryRepo.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return categoryRepo.ErrNotFound
}
