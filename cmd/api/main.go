package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickgigs-backend/config"
	_ "quickgigs-backend/docs"
	v1 "quickgigs-backend/internal/delivery/http/v1"
	"quickgigs-backend/internal/repository/postgres"
	"quickgigs-backend/internal/usecase"
	"quickgigs-backend/pkg/database"
	"quickgigs-backend/pkg/logger"
	"quickgigs-backend/pkg/redis"
	"quickgigs-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           QuickGigs API
// @version         1.0
// @description     Gig marketplace backend: clients post gigs, freelancers apply.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting QuickGigs backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting runs in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	gigRepo := postgres.NewGigRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	gigUC := usecase.NewGigUsecase(gigRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(gigRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		GigUC:         gigUC,
		ApplicationUC: applicationUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
