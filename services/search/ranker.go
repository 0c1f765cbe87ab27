package search

import (
	"sort"

	"localspot/models"
)

// RankByRating orders providers by rating average descending, breaking ties
// by id ascending. The store sort already applies the same ordering; ranking
// again here keeps results deterministic even for stores that guarantee no
// order.
func RankByRating(providers []models.Provider) {
	sort.SliceStable(providers, func(i, j int) bool {
		if providers[i].RatingAverage != providers[j].RatingAverage {
			return providers[i].RatingAverage > providers[j].RatingAverage
		}
		return providers[i].ID < providers[j].ID
	})
}
