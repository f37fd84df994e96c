package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// Create handles POST /trips
func (h *TripHandler) Create(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		respondError(c, err)
		return
	}

	trip, err := h.tripService.RecordTrip(c.Request.Context(), rec)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, trip)
}

// List handles GET /trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.tripService.ListTrips(c.Request.Context(), c.Query("driver_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, trips)
}
