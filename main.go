package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mandry/config"
	"mandry/database"
	attractionRepoPkg "mandry/database/repository/attraction"
	reviewRepoPkg "mandry/database/repository/review"
	userRepoPkg "mandry/database/repository/user"
	"mandry/handlers"
	"mandry/middleware"
	"mandry/routes"
	"mandry/services/attraction"
	"mandry/services/places"
	"mandry/services/review"
	"mandry/services/storage"
	"mandry/services/user"
	"mandry/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	var photoStorage storage.StorageService
	if cloudinaryStorage, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	); err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	} else {
		photoStorage = cloudinaryStorage
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	attractionRepo := attractionRepoPkg.NewMongoAttractionRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// The places gateway is a constructed dependency, injected below.
	gateway := places.NewClient(config.AppConfig.GoogleAPIKey, config.AppConfig.PlacesLanguage)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:     reviewRepo,
		Attractions: attractionRepo,
		Users:       userRepo,
		Gateway:     gateway,
	}
	attractionService := &attraction.DefaultAttractionService{
		Repo:    attractionRepo,
		Gateway: gateway,
		Storage: photoStorage,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:        handlers.NewAuthHandler(userService),
		Attractions: handlers.NewAttractionHandler(attractionService),
		Reviews:     handlers.NewReviewHandler(reviewService),
		UserRepo:    userRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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
