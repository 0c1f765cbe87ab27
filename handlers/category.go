package handlers

import (
	"errors"
	"net/http"

	categoryRepo "localspot/database/repository/category"
	"localspot/models"
	"localspot/services/category"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler serves category listing and admin CRUD.
type CategoryHandler struct {
	Service category.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: svc}
}

// ListCategoriesHandler returns all categories sorted by name.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	logger := getLogger(c)

	categories, err := h.Service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategoryHandler creates a new category.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	logger := getLogger(c)

	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		logger.Warn("Invalid category creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &cat)
	if err != nil {
		var vErr category.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		logger.Error("Failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCategoryHandler updates category information.
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		logger.Warn("Invalid category update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, &cat)
	if err != nil {
		var vErr category.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.Is(err, categoryRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			logger.Error("Failed to update category", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategoryHandler removes a category.
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, categoryRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		logger.Error("Failed to delete category", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
