package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/groovesmith/drumgen/internal/groove"
	"github.com/groovesmith/drumgen/internal/metrics"
	"github.com/groovesmith/drumgen/internal/midi"
)

type PatternHandler struct {
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewPatternHandler(cw *metrics.Client) *PatternHandler {
	return &PatternHandler{
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// bindParams overlays the request body onto the engine defaults, so absent
// fields keep their default values (in particular humanize stays true).
func bindParams(c *gin.Context) (groove.Params, error) {
	p := groove.DefaultParams()
	if err := c.ShouldBindJSON(&p); err != nil {
		return p, err
	}
	return p, nil
}

// Generate builds a drum pattern and returns it as JSON.
func (h *PatternHandler) Generate(c *gin.Context) {
	p, err := bindParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	start := time.Now()
	gen, err := groove.New(p)
	if err != nil {
		h.rejectParams(c, err)
		return
	}

	pattern := gen.Generate()
	duration := time.Since(start)

	log.Printf("🥁 Generated %s pattern: %d bars, complexity %d/5", pattern.Style, pattern.Bars, pattern.Complexity)

	h.recordGeneration(c, pattern, duration)

	c.JSON(http.StatusOK, pattern)
}

// GenerateMIDI builds a drum pattern and streams it as a Standard MIDI File.
func (h *PatternHandler) GenerateMIDI(c *gin.Context) {
	p, err := bindParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	start := time.Now()
	gen, err := groove.New(p)
	if err != nil {
		h.rejectParams(c, err)
		return
	}

	pattern := gen.Generate()
	duration := time.Since(start)

	filename := midi.Filename(p, 0, 1)
	log.Printf("🎵 Exporting MIDI: %s", filename)

	c.Header("Content-Type", "audio/midi")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := midi.Write(pattern, c.Writer); err != nil {
		log.Printf("❌ MIDI export failed: %v", err)
		if h.cloudwatch != nil {
			h.cloudwatch.RecordPatternGenerated(string(p.Style), pattern.Complexity, duration, false)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "midi export failed"})
		return
	}

	h.recordGeneration(c, pattern, duration)
}

// rejectParams maps parameter validation failures to 400 responses. Range
// errors name the offending field so clients can highlight it.
func (h *PatternHandler) rejectParams(c *gin.Context, err error) {
	var rangeErr *groove.RangeError
	if errors.As(err, &rangeErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": rangeErr.Error(),
			"field": rangeErr.Field,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *PatternHandler) recordGeneration(c *gin.Context, pattern *groove.Pattern, duration time.Duration) {
	if h.cloudwatch != nil {
		h.cloudwatch.RecordPatternGenerated(string(pattern.Style), pattern.Complexity, duration, true)
	}
	h.sentryMetrics.RecordGeneration(c.Request.Context(), string(pattern.Style), pattern.Bars, pattern.Complexity, duration)
}
