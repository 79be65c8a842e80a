package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/cache"
	"github.com/mentorlink/mentorship-service/internal/config"
	"github.com/mentorlink/mentorship-service/internal/events"
	"github.com/mentorlink/mentorship-service/internal/handlers"
	"github.com/mentorlink/mentorship-service/internal/repositories/postgres"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
	"github.com/mentorlink/mentorship-service/internal/validator"
	"github.com/mentorlink/mentorship-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	if cfg.UsingDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the insecure default. Do not run this in production.")
	}

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Failed to initialize Redis, caching disabled", "error", err)
			redisClient = nil
		}
	}

	// Initialize event publisher
	var publisher events.EventPublisher
	if cfg.KafkaBrokers != "" {
		publisher, err = events.NewKafkaEventPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewLogEventPublisher(slogLogger)
	}

	// Initialize repositories
	repo := postgres.NewPostgreSQLRepository(db)

	// Initialize token manager and validator
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours)
	v := validator.New()

	// Initialize services
	serviceManager := services.NewServiceManager(services.ServiceManagerConfig{
		Repo:      repo,
		Tokens:    tokens,
		Publisher: publisher,
		Cache:     cache.NewCacheHelper(redisClient, "mentorship:"),
		Logger:    slogLogger,
		Validator: v,
		Policy:    services.SessionPolicy{FeedbackRequiresAccepted: cfg.FeedbackRequiresAccepted},
	})

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, tokens, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Shutdown services (closes the event publisher)
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	// Close database connection
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	// Close Redis connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
