package handlers

import (
	"net/http"

	"folio.dev/internal/services"
)

// ProfileHandler serves biographical content
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ps *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.Get())
}

// GetContactInfo handles GET /api/contact-info
func (h *ProfileHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.ContactInfo())
}
