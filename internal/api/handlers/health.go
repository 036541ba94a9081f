package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groovesmith/drumgen/internal/groove"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"engine": gin.H{
			"styles": len(groove.Styles()),
			"fills":  groove.FillCount(),
		},
	})
}
