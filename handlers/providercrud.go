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

// Admin CRUD over providers. All routes here sit behind the admin JWT
// middleware.

// CreateProviderHandler creates a new provider.
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var prov models.Provider
	if err := c.ShouldBindJSON(&prov); err != nil {
		logger.Warn("Invalid provider creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateProvider(c.Request.Context(), &prov)
	if err != nil {
		var vErr provider.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		logger.Error("Failed to create provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create provider"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProviderHandler updates provider information.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var prov models.Provider
	if err := c.ShouldBindJSON(&prov); err != nil {
		logger.Warn("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProvider(c.Request.Context(), id, &prov)
	if err != nil {
		var vErr provider.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.Is(err, providerRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		default:
			logger.Error("Failed to update provider", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetProviderActiveHandler toggles provider visibility (soft delete and
// reinstate).
func (h *ProviderHandler) SetProviderActiveHandler(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		if err := h.Service.SetActive(c.Request.Context(), id, active); err != nil {
			if errors.Is(err, providerRepo.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
				return
			}
			logger.Error("Failed to toggle provider", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "isActive": active})
	}
}

// DeleteProviderHandler removes a provider record permanently.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteProvider(c.Request.Context(), id); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		logger.Error("Failed to delete provider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete provider"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}
