package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/repository"
	"drivelog/internal/service"
)

// ProfileHandler handles HTTP requests for the driver profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Query("driver_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(c, http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, profile)
}

// Update handles POST /profile. The submitted profile replaces the stored
// one for its driver.
func (h *ProfileHandler) Update(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), rec)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, profile)
}
