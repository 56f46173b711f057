package v1

import (
	"net/http"
	"time"

	"quickgigs-backend/config"
	"quickgigs-backend/internal/delivery/http/middleware"
	"quickgigs-backend/internal/delivery/http/response"
	"quickgigs-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	GigUC         domain.GigUsecase
	ApplicationUC domain.ApplicationUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	r.GET("/", func(c *gin.Context) {
		response.Confirm(c, http.StatusOK, "Welcome to QuickGigs API")
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.APIRateLimitConfig(
		deps.Config.RateLimitThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Confirm(c, http.StatusOK, "System operational")
	})

	// Swagger
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewGigHandler(api, deps.GigUC)
	NewApplicationHandler(api, deps.ApplicationUC)

	return r
}
