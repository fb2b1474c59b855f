package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Availability reports whether a dependency's real backend is in use.
type Availability interface {
	Available() bool
}

// Health serves the banner and health endpoints.
type Health struct {
	version     string
	environment string
	completion  Availability
	vision      Availability
	storage     Availability
}

// NewHealth creates the health handler.
func NewHealth(version, environment string, completion, vision, storage Availability) *Health {
	return &Health{
		version:     version,
		environment: environment,
		completion:  completion,
		vision:      vision,
		storage:     storage,
	}
}

// Root returns the service banner.
func (h *Health) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "AI API Service",
		"version":     h.version,
		"environment": h.environment,
		"docs":        "/health",
	})
}

// Check reports overall status and per-dependency availability. The service
// is healthy even when every dependency is degraded: fallbacks cover them.
func (h *Health) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   h.version,
		"services": gin.H{
			"completion_backend": h.completion.Available(),
			"vision_backend":     h.vision.Available(),
			"object_storage":     h.storage.Available(),
		},
	})
}
