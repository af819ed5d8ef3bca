package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/config"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/api"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/database"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/middleware"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/router"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/server"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to Postgres and Redis
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Build the plan generation pipeline
	embeddings, err := service.NewEmbeddingService(cfg.OpenAIAPIKey)
	if err != nil {
		log.Fatalf("Failed to create embedding service: %v", err)
	}
	knowledge := service.NewKnowledgeService(embeddings, service.NewKnowledgeStore(db))

	catalog, err := service.NewSpoonacularService(cfg.SpoonacularAPIKey)
	if err != nil {
		log.Fatalf("Failed to create recipe catalog: %v", err)
	}
	recipes := service.NewRecipeService(catalog, redisClient)

	generator, err := service.NewLLMService(cfg.GoogleAPIKey)
	if err != nil {
		log.Fatalf("Failed to create generation service: %v", err)
	}

	planner := service.NewNutritionPlanService(knowledge, recipes, generator)

	// Wire the HTTP surface
	authService := service.NewAuthService(cfg.JWTSecret)
	rateLimiter := middleware.NewPlanGenerationRateLimiter(redisClient)
	nutritionHandler := api.NewNutritionHandler(planner)

	engine := router.SetupRouter(nutritionHandler, authService, rateLimiter)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
