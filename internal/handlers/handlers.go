package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"folio.dev/internal/apperror"
	"folio.dev/internal/config"
	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/storage"
	"folio.dev/internal/validation"
	"folio.dev/internal/web"
)

// Dependencies are the loaded pieces SetupRoutes wires together
type Dependencies struct {
	Config  *config.Config
	Content *models.Content
	DB      *storage.DB
	Log     *slog.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Dependencies) (http.Handler, error) {
	cfg, log := deps.Config, deps.Log

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	// Initialize services
	projectService := services.NewProjectService(&models.ProjectList{Projects: deps.Content.Projects})
	skillService := services.NewSkillService(deps.Content.SkillCategories)
	profileService := services.NewProfileService(deps.Content.Profile)
	themeService := services.NewThemeService(storage.NewPreferenceStore(deps.DB), log)
	formService := services.NewFormService(services.FormDelays{
		Contact:    cfg.Forms.ContactDelay,
		Newsletter: cfg.Forms.NewsletterDelay,
		Resume:     cfg.Forms.ResumeDelay,
	}, validation.New(), deps.Content.Profile.ResumePath, log)
	salt := cfg.Analytics.Salt
	if salt == "" && cfg.Analytics.Enabled {
		salt = uuid.New().String()
		log.Warn("analytics.salt is not set, unique visitor counts reset on restart")
	}
	analyticsService := services.NewAnalyticsService(storage.NewVisitStore(deps.DB), salt, log)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	skillHandler := NewSkillHandler(skillService)
	profileHandler := NewProfileHandler(profileService)
	themeHandler := NewThemeHandler(themeService)
	formHandler := NewFormHandler(formService, renderer, log)
	statsHandler := NewStatsHandler(analyticsService)
	pageHandler := NewPageHandler(renderer, themeService, projectService, skillService, profileService, log)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// Logger wraps Recovery so a recovered panic still logs its 500
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.VisitorID)
	if cfg.Analytics.Enabled {
		r.Use(middleware.TrackVisits(analyticsService, log))
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/facets", projectHandler.GetFacets)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Skills and profile
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/skills/{category}", skillHandler.GetCategory)
		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/contact-info", profileHandler.GetContactInfo)

		// Theme
		r.Get("/theme", themeHandler.GetTheme)
		r.Post("/theme/toggle", themeHandler.ToggleTheme)

		// Simulated forms
		r.Post("/forms/contact", formHandler.SubmitContact)
		r.Post("/forms/newsletter", formHandler.SubmitNewsletter)
		r.Post("/forms/resume", formHandler.GenerateResume)

		r.Get("/stats", statsHandler.GetStats)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/skills", pageHandler.Skills)
	r.Get("/resume", pageHandler.Resume)
	r.Get("/contact", pageHandler.Contact)

	// HTML form posts answer with a result fragment
	r.Post("/contact", formHandler.ContactPage)
	r.Post("/newsletter", formHandler.NewsletterPage)
	r.Post("/resume", formHandler.ResumePage)
	r.Post("/theme/toggle", themeHandler.TogglePage)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON", "error", err)
	}
}

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	if appErr.Code >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	respondJSON(w, appErr.Code, errorBody{Error: appErr.Message, Details: appErr.Details})
}

// listFields are posted form keys that decode into slices
var listFields = map[string]bool{"sections": true}

// maxBodyBytes caps form and JSON bodies; the largest field is a 5000
// character message.
const maxBodyBytes = 64 << 10

// decodeBody fills dst from a JSON body or, for HTML forms, from the
// posted fields matching dst's json tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return bodyError(err, "Invalid request body")
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return bodyError(err, "Invalid form data")
	}
	fields := make(map[string]any, len(r.PostForm))
	for key, values := range r.PostForm {
		if listFields[key] {
			fields[key] = values
			continue
		}
		fields[key] = values[0]
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apperror.BadRequest("Invalid form data")
	}
	return nil
}

func bodyError(err error, message string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err)
	}
	return apperror.BadRequest(message)
}

// prefersDark reads the client hint browsers send for prefers-color-scheme
func prefersDark(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), "dark")
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
