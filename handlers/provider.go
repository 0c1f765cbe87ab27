package handlers

import (
	"errors"
	"net/http"

	providerRepo "localspot/database/repository/provider"
	"localspot/models"
	"localspot/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the public provider endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// ListProvidersHandler returns all active providers sorted by rating.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	providers, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve providers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProviderByIDHandler returns the full provider record. Direct lookup
// returns inactive providers too; only list and search surfaces hide them.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	prov, err := h.Service.GetProviderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		logger.Error("Failed to fetch provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provider"})
		return
	}
	c.JSON(http.StatusOK, prov)
}

// AddReviewHandler submits a review and returns the provider with its
// recomputed rating.
func (h *ProviderHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		logger.Warn("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prov, err := h.Service.AddReview(c.Request.Context(), id, review)
	if err != nil {
		var vErr provider.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.Is(err, providerRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		default:
			logger.Error("Failed to add review", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		}
		return
	}
	c.JSON(http.StatusOK, prov)
}
