package search_test

import (
	"context"
	"errors"
	"testing"

	"localspot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestFixture() (*fakeProviderRepo, *fakeCategoryRepo) {
	pizzaCat := models.Category{ID: "pizza", Name: "Pizza"}
	provs := &fakeProviderRepo{providers: []models.Provider{
		{
			ID:            "prov-palace",
			Name:          "Pizza Palace",
			Description:   "Wood-fired pizza",
			CategoryID:    "pizza",
			Category:      &pizzaCat,
			Address:       "12 Market Road",
			RatingAverage: 4.2,
			IsActive:      true,
		},
		{
			ID:       "prov-closed",
			Name:     "Pizza Point (closed)",
			IsActive: false,
		},
	}}
	cats := &fakeCategoryRepo{categories: []models.Category{
		pizzaCat,
		{ID: "food", Name: "Food & Dining"},
	}}
	return provs, cats
}

func TestSuggest_ShortQueryMakesNoStoreCall(t *testing.T) {
	provs, cats := suggestFixture()
	svc := newService(provs, cats)

	for _, q := range []string{"", "a", " a ", "  "} {
		got, err := svc.Suggest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, got, "query %q", q)
	}
	assert.Zero(t, provs.suggestCalls)
	assert.Zero(t, cats.suggestCalls)
}

func TestSuggest_MergesProvidersThenCategories(t *testing.T) {
	provs, cats := suggestFixture()
	svc := newService(provs, cats)

	got, err := svc.Suggest(context.Background(), "piz")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.Suggestion{
		ID:       "prov-palace",
		Name:     "Pizza Palace",
		Category: "Pizza",
		Address:  "12 Market Road",
		Type:     models.SuggestionTypeProvider,
	}, got[0])
	assert.Equal(t, models.Suggestion{
		ID:   "pizza",
		Name: "Pizza",
		Type: models.SuggestionTypeCategory,
	}, got[1])
}

func TestSuggest_TrimsBeforeLengthCheck(t *testing.T) {
	provs, cats := suggestFixture()
	svc := newService(provs, cats)

	got, err := svc.Suggest(context.Background(), "  piz  ")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "prov-palace", got[0].ID)
}

func TestSuggest_InactiveProvidersExcluded(t *testing.T) {
	provs, cats := suggestFixture()
	svc := newService(provs, cats)

	got, err := svc.Suggest(context.Background(), "Point")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggest_CapAppliesPerSource(t *testing.T) {
	provs, cats := suggestFixture()
	for i := 0; i < 10; i++ {
		provs.providers = append(provs.providers, models.Provider{
			ID:       string(rune('a'+i)) + "-pizzeria",
			Name:     "Neighborhood Pizzeria",
			IsActive: true,
		})
	}
	svc := newService(provs, cats)
	svc.SuggestionLimit = 3

	got, err := svc.Suggest(context.Background(), "pizz")
	require.NoError(t, err)

	var providerCount, categoryCount int
	for _, sg := range got {
		switch sg.Type {
		case models.SuggestionTypeProvider:
			providerCount++
		case models.SuggestionTypeCategory:
			categoryCount++
		}
	}
	assert.Equal(t, 3, providerCount)
	assert.Equal(t, 1, categoryCount)
}

func TestSuggest_StoreFailureReturnsNoPartialMerge(t *testing.T) {
	provs, cats := suggestFixture()
	cats.suggestErr = errors.New("connection reset")
	svc := newService(provs, cats)

	got, err := svc.Suggest(context.Background(), "piz")
	require.Error(t, err)
	assert.Nil(t, got, "provider matches must not leak when the category lookup fails")
}
