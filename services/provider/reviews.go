package provider

import (
	"context"
	"fmt"
	"time"

	"localspot/models"
)

// AddReview validates the rating, appends the review, and stores the
// recomputed average. The running average is derived from the stored count so
// old reviews never need re-reading.
func (s *DefaultProviderService) AddReview(ctx context.Context, id string, review models.Review) (*models.Provider, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.CreatedAt = time.Now().UTC()
	newCount := existing.RatingCount + 1
	newAverage := (existing.RatingAverage*float64(existing.RatingCount) + review.Rating) / float64(newCount)

	if err := s.Repo.AddReview(ctx, id, review, newAverage, newCount); err != nil {
		return nil, fmt.Errorf("add review to provider %s: %w", id, err)
	}

	existing.Reviews = append(existing.Reviews, review)
	existing.RatingAverage = newAverage
	existing.RatingCount = newCount
	return existing, nil
}
