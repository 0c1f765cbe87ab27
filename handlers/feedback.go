package handlers

import (
	"errors"
	"net/http"

	"localspot/models"
	"localspot/services/feedback"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedbackHandler serves feedback submission and the admin listing.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

// SubmitFeedbackHandler accepts a feedback submission.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	logger := getLogger(c)

	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		logger.Warn("Invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), &fb)
	if err != nil {
		var vErr feedback.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		logger.Error("Failed to submit feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": created})
}

// ListFeedbackHandler returns all feedback, newest first.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	logger := getLogger(c)

	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": items})
}
