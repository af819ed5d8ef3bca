package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/api"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	nutritionHandler *api.NutritionHandler,
	validator middleware.TokenValidator,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		var rateLimit gin.HandlerFunc
		if rateLimiter != nil {
			rateLimit = rateLimiter.RateLimitMiddleware()
		}
		nutritionHandler.RegisterRoutes(protected, rateLimit)
	}

	return router
}
