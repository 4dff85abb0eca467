package handlers

import (
	"net/http"
	"net/url"

	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// ThemeCookie mirrors the persisted flag for client-side scripts
const ThemeCookie = "theme"

// ThemeHandler reads and toggles the visitor's theme
type ThemeHandler struct {
	themeService *services.ThemeService
}

// NewThemeHandler creates a new ThemeHandler
func NewThemeHandler(ts *services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: ts}
}

// GetTheme handles GET /api/theme
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	state := h.themeService.Resolve(r.Context(), middleware.GetVisitorID(r.Context()), prefersDark(r))
	respondJSON(w, http.StatusOK, state)
}

// ToggleTheme handles POST /api/theme/toggle
func (h *ThemeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	state := h.toggle(w, r)
	respondJSON(w, http.StatusOK, state)
}

// TogglePage handles the header button's POST /theme/toggle and sends
// the browser back where it came from
func (h *ThemeHandler) TogglePage(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r)
	http.Redirect(w, r, sameSiteReferer(r), http.StatusSeeOther)
}

func (h *ThemeHandler) toggle(w http.ResponseWriter, r *http.Request) models.ThemeState {
	state := h.themeService.ToggleFor(r.Context(), middleware.GetVisitorID(r.Context()), prefersDark(r))
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    state.ClassName(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

// sameSiteReferer returns the referer path when it points at this host
func sameSiteReferer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
