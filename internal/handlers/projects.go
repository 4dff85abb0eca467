package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/apperror"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// projectListResponse is the body of GET /api/projects
type projectListResponse struct {
	Projects []models.Project      `json:"projects"`
	Total    int                   `json:"total"`
	Query    services.ProjectQuery `json:"query"`
}

// ListProjects handles GET /api/projects?type=&tech=&complexity=&status=&q=&sort=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query, err := parseProjectQuery(r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}

	projects := h.projectService.Filter(query)
	respondJSON(w, http.StatusOK, projectListResponse{
		Projects: projects,
		Total:    len(h.projectService.GetAll()),
		Query:    query,
	})
}

// GetFacets handles GET /api/projects/facets
func (h *ProjectHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Facets())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperror.BadRequest("Invalid project id"))
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, apperror.NotFound("Project not found"))
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// parseProjectQuery reads filter selections; each category accepts
// repeated keys and comma-separated values
func parseProjectQuery(values url.Values) (services.ProjectQuery, error) {
	sortKey, err := services.ParseSortKey(values.Get("sort"))
	if err != nil {
		return services.ProjectQuery{}, apperror.BadRequest(err.Error())
	}

	return services.ProjectQuery{
		Types:        splitValues(values["type"]),
		Technologies: splitValues(values["tech"]),
		Complexities: splitValues(values["complexity"]),
		Statuses:     splitValues(values["status"]),
		Search:       strings.TrimSpace(values.Get("q")),
		Sort:         sortKey,
	}, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
