package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/apperror"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// SkillHandler serves the skills dataset
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(ss *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: ss}
}

type skillsResponse struct {
	Categories []models.SkillCategory `json:"categories"`
	Summary    models.SkillSummary    `json:"summary"`
}

// ListSkills handles GET /api/skills
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, skillsResponse{
		Categories: h.skillService.GetAll(),
		Summary:    h.skillService.Summary(),
	})
}

// GetCategory handles GET /api/skills/{category}
func (h *SkillHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.skillService.GetCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondError(w, apperror.NotFound("Skill category not found"))
		return
	}
	respondJSON(w, http.StatusOK, category)
}
