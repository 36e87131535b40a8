package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/middleware"
	"genai-proxy-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	// PromptService serves /generate with the deployment-configured policy
	PromptService services.PromptService
	// EvaluateService serves /evaluate, always in structured (raw JSON) mode
	EvaluateService services.PromptService
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// CORS
	router.Use(middleware.CORS())

	// Request size limit (64KB is plenty for a prompt)
	router.Use(middleware.RequestSizeLimit(64 * 1024))

	// Content type validation for POST requests
	router.Use(middleware.ContentTypeValidation("application/json"))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Error tracking
	router.Use(middleware.ErrorTracker())

	// Enhanced error handling
	router.Use(middleware.EnhancedErrorHandler())
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, routerConfig *RouterConfig) {
	// Create handlers
	promptHandler := NewPromptHandler(routerConfig.PromptService)
	evaluateHandler := NewPromptHandler(routerConfig.EvaluateService)

	// The serverless face answers 405 for non-POST; the server face matches
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Message: "Method not allowed. Use POST.",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "genai-proxy-api",
			"version": "1.0.0",
			"mode":    config.GetDeploymentMode(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/generate", promptHandler.Generate)
		v1.POST("/evaluate", evaluateHandler.Generate)
	}
}
