package feedbackRepo

import (
	"context"

	"localspot/models"
)

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// Create inserts a new feedback record.
	Create(ctx context.Context, feedback *models.Feedback) error
	// GetAll retrieves all feedback, newest first.
	GetAll(ctx context.Context) ([]models.Feedback, error)
	// Count returns the total number of feedback records.
	Count(ctx context.Context) (int64, error)
}
