package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groovesmith/drumgen/internal/groove"
)

// Info enumerates the engine vocabulary so clients can build pickers without
// hardcoding the catalog.
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"styles":         groove.Styles(),
		"kick_patterns":  groove.KickPatterns(),
		"hihat_patterns": groove.HihatPatterns(),
		"sections":       groove.Sections(),
		"rudiment_types": groove.RudimentTypes(),
		"fills":          groove.FillNames(),
		"defaults":       groove.DefaultParams(),
	})
}
