package feedback_test

import (
	"context"
	"testing"

	"localspot/models"
	"localspot/services/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFeedbackRepo struct {
	items []models.Feedback
}

func (r *memFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	r.items = append(r.items, *fb)
	return nil
}

func (r *memFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return r.items, nil
}

func (r *memFeedbackRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func TestSubmit_FillsDefaults(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := &feedback.DefaultFeedbackService{Repo: repo}

	fb, err := svc.Submit(context.Background(), &models.Feedback{
		Message: "the suggestions dropdown flickers",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, models.FeedbackTypeGeneral, fb.Type, "empty type defaults to general")
	assert.Equal(t, "pending", fb.Status)
	assert.False(t, fb.CreatedAt.IsZero())
	require.Len(t, repo.items, 1)
}

func TestSubmit_UnknownType(t *testing.T) {
	svc := &feedback.DefaultFeedbackService{Repo: &memFeedbackRepo{}}

	_, err := svc.Submit(context.Background(), &models.Feedback{
		Type:    "complaint",
		Message: "long enough message here",
	})
	var vErr feedback.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
}

func TestSubmit_MessageTooShort(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := &feedback.DefaultFeedbackService{Repo: repo}

	// Trimmed length is what counts.
	_, err := svc.Submit(context.Background(), &models.Feedback{
		Message: "   short   ",
	})
	var vErr feedback.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "message", vErr.Field)
	assert.Empty(t, repo.items)
}

func TestSubmit_BadEmail(t *testing.T) {
	svc := &feedback.DefaultFeedbackService{Repo: &memFeedbackRepo{}}

	_, err := svc.Submit(context.Background(), &models.Feedback{
		Message: "search results look stale",
		Email:   "not-an-email",
	})
	var vErr feedback.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestSubmit_EmailOptional(t *testing.T) {
	svc := &feedback.DefaultFeedbackService{Repo: &memFeedbackRepo{}}

	_, err := svc.Submit(context.Background(), &models.Feedback{
		Type:    models.FeedbackTypeSearchIssue,
		Message: "no results for a shop I know exists",
	})
	assert.NoError(t, err)
}

func TestList_EmptyNotNil(t *testing.T) {
	svc := &feedback.DefaultFeedbackService{Repo: &memFeedbackRepo{}}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
