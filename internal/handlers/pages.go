package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"

	"folio.dev/internal/apperror"
	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/web"
)

// PageHandler renders the six site pages
type PageHandler struct {
	renderer       *web.Renderer
	themeService   *services.ThemeService
	projectService *services.ProjectService
	skillService   *services.SkillService
	profileService *services.ProfileService
	log            *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	renderer *web.Renderer,
	ts *services.ThemeService,
	ps *services.ProjectService,
	ss *services.SkillService,
	prs *services.ProfileService,
	log *slog.Logger,
) *PageHandler {
	return &PageHandler{
		renderer:       renderer,
		themeService:   ts,
		projectService: ps,
		skillService:   ss,
		profileService: prs,
		log:            log,
	}
}

type projectsPage struct {
	Projects []models.Project
	Total    int
	Facets   models.ProjectFacets
	Query    services.ProjectQuery
}

type skillsPage struct {
	Categories []models.SkillCategory
	Summary    models.SkillSummary
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", "Home", h.projectService.Featured())
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about", "About", nil)
}

// Projects handles GET /projects with the same query as the API
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	query, err := parseProjectQuery(r.URL.Query())
	if err != nil {
		// unknown sort keys fall back to authored order
		query, _ = parseProjectQuery(withoutSort(r))
	}
	h.render(w, r, "projects", "Projects", projectsPage{
		Projects: h.projectService.Filter(query),
		Total:    len(h.projectService.GetAll()),
		Facets:   h.projectService.Facets(),
		Query:    query,
	})
}

// Skills handles GET /skills
func (h *PageHandler) Skills(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "skills", "Skills", skillsPage{
		Categories: h.skillService.GetAll(),
		Summary:    h.skillService.Summary(),
	})
}

// Resume handles GET /resume
func (h *PageHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "resume", "Resume", services.ResumeSections())
}

// Contact handles GET /contact with an empty draft
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact", "Contact", models.ContactForm{})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	theme := h.themeService.Resolve(r.Context(), middleware.GetVisitorID(r.Context()), prefersDark(r))

	var buf bytes.Buffer
	err := h.renderer.Render(&buf, page, web.PageData{
		Title:   title,
		Active:  page,
		Theme:   theme,
		Profile: h.profileService.Get(),
		Data:    data,
	})
	if err != nil {
		h.log.Error("rendering page", "page", page, "error", err)
		respondError(w, apperror.Internal(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
	w.Header().Set("Vary", "Sec-CH-Prefers-Color-Scheme")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func withoutSort(r *http.Request) url.Values {
	values := r.URL.Query()
	values.Del("sort")
	return values
}
