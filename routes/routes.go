package routes

import (
	"net/http"
	"time"

	"localspot/handlers"
	"localspot/middleware"
	"localspot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterProviderRoutes registers the public provider endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// POST with a filter body runs a search, mirroring the client contract.
		api.POST("", hb.Search.SearchProvidersHandler)
		api.GET("", hb.Provider.ListProvidersHandler)
		api.GET("/:id", hb.Provider.GetProviderByIDHandler)
		api.POST("/:id/reviews", hb.Provider.AddReviewHandler)
	}
}

// RegisterSearchRoutes registers suggestion and trending endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/suggestions", hb.Search.SuggestionsHandler)
		api.GET("/trending", hb.Search.TrendingHandler)
	}
}

// RegisterCategoryRoutes registers the public category listing.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.Category.ListCategoriesHandler)
}

// RegisterFeedbackRoutes registers the public feedback submission endpoint.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/feedback", hb.Feedback.SubmitFeedbackHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.POST("/login", hb.Admin.AdminLoginHandler)

	protected := adminGroup.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware())
	{
		protected.GET("/stats", hb.Admin.AdminStatsHandler)
		protected.GET("/feedback", hb.Feedback.ListFeedbackHandler)

		protected.POST("/providers", hb.Provider.CreateProviderHandler)
		protected.PUT("/providers/:id", hb.Provider.UpdateProviderHandler)
		protected.PATCH("/providers/:id/activate", hb.Provider.SetProviderActiveHandler(true))
		protected.PATCH("/providers/:id/deactivate", hb.Provider.SetProviderActiveHandler(false))
		protected.DELETE("/providers/:id", hb.Provider.DeleteProviderHandler)

		protected.POST("/categories", hb.Category.CreateCategoryHandler)
		protected.PUT("/categories/:id", hb.Category.UpdateCategoryHandler)
		protected.DELETE("/categories/:id", hb.Category.DeleteCategoryHandler)

		if hb.Storage != nil {
			protected.POST("/photos", hb.Storage.UploadPhotoHandler)
		}
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
