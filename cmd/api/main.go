package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealmind/backend/config"
	"github.com/mealmind/backend/internal/api"
	"github.com/mealmind/backend/internal/database"
	"github.com/mealmind/backend/internal/middleware"
	"github.com/mealmind/backend/internal/router"
	"github.com/mealmind/backend/internal/server"
	"github.com/mealmind/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis is optional: without it the service runs with caching and rate
	// limiting disabled.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
		redisClient = nil
	}

	// Initialize the generation service
	ctx := context.Background()
	gemini, err := service.NewGeminiService(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create generation service: %v", err)
	}
	defer gemini.Close()

	// Initialize services and handlers
	planner := service.NewPlannerService(gemini, cfg.GeminiModel, cfg.UseNativeSchema, redisClient)
	records := service.NewRecordService(db)

	var generateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "mealmind:ratelimit",
		})
		generateLimit = limiter.Middleware()
	}

	r := router.SetupRouter(
		api.NewPlannerHandler(planner),
		api.NewRecordsHandler(records),
		generateLimit,
		db,
	)

	// Create and start server
	srv := server.NewServer(r)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
