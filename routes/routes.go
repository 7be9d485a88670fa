package routes

import (
	"net/http"
	"time"

	userRepo "mandry/database/repository/user"
	"mandry/handlers"
	"mandry/middleware"
	"mandry/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers and the repository the auth
// middleware validates against.
type HandlerBundle struct {
	Auth        *handlers.AuthHandler
	Attractions *handlers.AttractionHandler
	Reviews     *handlers.ReviewHandler
	UserRepo    userRepo.UserRepository
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/favorites/:attractionId", hb.Auth.AddFavoriteHandler)
		api.DELETE("/favorites/:attractionId", hb.Auth.RemoveFavoriteHandler)
	}
}

// RegisterAttractionRoutes registers directory and review endpoints.
func RegisterAttractionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/attractions")
	{
		// Public reads. Listing reviews triggers the external refresh.
		api.GET("", hb.Attractions.ListHandler)
		api.GET("/:id", hb.Attractions.GetHandler)
		api.GET("/:id/reviews", hb.Reviews.ListAttractionReviewsHandler)

		// Authenticated writes.
		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		authed.POST("/:id/reviews", hb.Reviews.CreateReviewHandler)

		// Curation endpoints require the admin role.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin(hb.UserRepo))
		admin.POST("", hb.Attractions.CreateHandler)
		admin.PUT("/:id", hb.Attractions.UpdateHandler)
		admin.DELETE("/:id", hb.Attractions.DeleteHandler)
		admin.POST("/:id/photos", hb.Attractions.UploadPhotoHandler)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		reviews.PUT("/:id", hb.Reviews.UpdateReviewHandler)
		reviews.DELETE("/:id", hb.Reviews.DeleteReviewHandler)
	}
}

// RegisterPlaceRoutes registers provider discovery endpoints.
func RegisterPlaceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/places")
	{
		api.GET("/nearby", hb.Attractions.NearbyHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin(hb.UserRepo))
		admin.GET("/search", hb.Attractions.SearchHandler)
		admin.POST("/import", hb.Attractions.ImportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAttractionRoutes(r, hb)
	RegisterPlaceRoutes(r, hb)
	RegisterHealthRoute(r)
}
