package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/middleware"
	"drivelog/internal/repository"
)

// HealthHandler serves liveness and store-reachability checks.
type HealthHandler struct {
	store   repository.Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store repository.Pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	respondJSON(c, http.StatusOK, gin.H{
		"message": "Driver log API is running",
		"status":  "healthy",
		"version": h.version,
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		middleware.LoggerFrom(c).WithError(err).Warn("health check failed")
		respondJSON(c, http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
		"message":  "All systems operational",
	})
}
