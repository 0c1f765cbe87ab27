package handlers

import (
	"errors"
	"net/http"

	"localspot/metrics"
	"localspot/models"
	"localspot/services/search"
	"localspot/services/stats"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the search, suggestion, and trending endpoints.
type SearchHandler struct {
	Search search.SearchService
	Stats  stats.StatsService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(searchSvc search.SearchService, statsSvc stats.StatsService) *SearchHandler {
	return &SearchHandler{Search: searchSvc, Stats: statsSvc}
}

// SearchProvidersHandler runs a provider search from a JSON filter body.
func (h *SearchHandler) SearchProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	metrics.SearchesTotal.Inc()
	providers, err := h.Search.Search(c.Request.Context(), req)
	if err != nil {
		var vErr search.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		logger.Error("Provider search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// SuggestionsHandler returns merged autocomplete suggestions for ?q=. Queries
// below the length cutoff answer with an empty list and no store access.
func (h *SearchHandler) SuggestionsHandler(c *gin.Context) {
	logger := getLogger(c)

	metrics.SuggestionsTotal.Inc()
	suggestions, err := h.Search.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Error("Suggestion lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// TrendingHandler returns the most frequent recent search queries.
func (h *SearchHandler) TrendingHandler(c *gin.Context) {
	logger := getLogger(c)

	trending, err := h.Stats.Trending(c.Request.Context(), 10)
	if err != nil {
		logger.Error("Trending lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending searches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": trending})
}
