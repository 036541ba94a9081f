package api

import (
	"github.com/gin-gonic/gin"
	"github.com/groovesmith/drumgen/internal/api/handlers"
	apimiddleware "github.com/groovesmith/drumgen/internal/api/middleware"
	"github.com/groovesmith/drumgen/internal/config"
	"github.com/groovesmith/drumgen/internal/metrics"
)

func SetupRouter(cfg *config.Config, cloudwatch *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Pattern generation API v1
	v1 := router.Group("/api/v1")
	{
		patternHandler := handlers.NewPatternHandler(cloudwatch)
		v1.POST("/patterns", patternHandler.Generate)
		v1.POST("/patterns/midi", patternHandler.GenerateMIDI)
		v1.GET("/info", handlers.Info)
	}

	return router
}
