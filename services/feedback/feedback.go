package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	feedbackRepo "localspot/database/repository/feedback"
	"localspot/models"

	"github.com/google/uuid"
)

// MinMessageLen is the shortest accepted feedback message.
const MinMessageLen = 10

// FeedbackService accepts and lists user feedback.
type FeedbackService interface {
	Submit(ctx context.Context, fb *models.Feedback) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

// ValidationError indicates a malformed feedback payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}

var validTypes = map[string]bool{
	models.FeedbackTypeGeneral:     true,
	models.FeedbackTypeBug:         true,
	models.FeedbackTypeFeature:     true,
	models.FeedbackTypeSearchIssue: true,
}

// Submit validates and stores feedback; new records start as "pending".
func (s *DefaultFeedbackService) Submit(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	if fb.Type == "" {
		fb.Type = models.FeedbackTypeGeneral
	}
	if !validTypes[fb.Type] {
		return nil, ValidationError{Field: "type", Reason: "unknown feedback type"}
	}
	fb.Message = strings.TrimSpace(fb.Message)
	if len(fb.Message) < MinMessageLen {
		return nil, ValidationError{Field: "message", Reason: fmt.Sprintf("must be at least %d characters", MinMessageLen)}
	}
	if fb.Email != "" && !strings.Contains(fb.Email, "@") {
		return nil, ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	fb.ID = uuid.NewString()
	fb.Status = "pending"
	fb.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}
	return fb, nil
}

func (s *DefaultFeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	items, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Feedback{}
	}
	return items, nil
}
