// File: localspot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localspot/config"
	"localspot/database"
	categoryRepo "localspot/database/repository/category"
	feedbackRepo "localspot/database/repository/feedback"
	providerRepo "localspot/database/repository/provider"
	"localspot/handlers"
	"localspot/middleware"
	"localspot/routes"
	"localspot/services/category"
	"localspot/services/feedback"
	"localspot/services/provider"
	"localspot/services/search"
	"localspot/services/stats"
	"localspot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStatsCache()
	if err := database.SeedIfEmpty(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed database: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	db := database.Database()
	provRepo := providerRepo.NewMongoProviderRepo(db)
	catRepo := categoryRepo.NewMongoCategoryRepo(db)
	fbRepo := feedbackRepo.NewMongoFeedbackRepo(db)

	// services.
	statsService := &stats.DefaultStatsService{
		Providers: provRepo,
		Feedback:  fbRepo,
		Redis:     utils.GetStatsClient(),
	}
	searchService := &search.DefaultSearchService{
		Providers:       provRepo,
		Categories:      catRepo,
		Recorder:        statsService,
		SuggestionLimit: int64(config.AppConfig.SuggestionLimit),
		PriceMode:       search.ParsePriceMatchMode(config.AppConfig.PriceMatchMode),
	}
	providerService := &provider.DefaultProviderService{
		Repo:       provRepo,
		Categories: catRepo,
	}
	categoryService := &category.DefaultCategoryService{Repo: catRepo}
	feedbackService := &feedback.DefaultFeedbackService{Repo: fbRepo}

	// Photo storage is optional; the admin upload route is skipped when
	// Cloudinary credentials are absent.
	var storageHandler *handlers.StorageHandler
	if storageService, err := utils.Cloudinary(); err != nil {
		logger.Warn("Photo storage disabled", zap.Error(err))
	} else {
		storageHandler = handlers.NewStorageHandler(storageService)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:   handlers.NewSearchHandler(searchService, statsService),
		Provider: handlers.NewProviderHandler(providerService),
		Category: handlers.NewCategoryHandler(categoryService),
		Feedback: handlers.NewFeedbackHandler(feedbackService),
		Admin:    handlers.NewAdminHandler(statsService),
		Storage:  storageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor(utils.GetStatsClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
