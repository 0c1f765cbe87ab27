package search_test

import (
	"testing"

	"localspot/models"
	"localspot/services/search"

	"github.com/stretchr/testify/assert"
)

func TestRankByRating(t *testing.T) {
	providers := []models.Provider{
		{ID: "c", RatingAverage: 4.5},
		{ID: "a", RatingAverage: 3.0},
		{ID: "d", RatingAverage: 5.0},
		{ID: "b", RatingAverage: 4.5},
	}

	search.RankByRating(providers)

	assert.Equal(t, []string{"d", "b", "c", "a"}, ids(providers),
		"rating descending, ties broken by id ascending")
}

func TestRankByRating_NonIncreasing(t *testing.T) {
	providers := []models.Provider{
		{ID: "x", RatingAverage: 1.2},
		{ID: "y", RatingAverage: 4.9},
		{ID: "z", RatingAverage: 4.9},
	}
	search.RankByRating(providers)
	for i := 1; i < len(providers); i++ {
		assert.GreaterOrEqual(t, providers[i-1].RatingAverage, providers[i].RatingAverage)
	}
}
