package services

import (
	"context"
	"errors"
	"log/slog"

	"folio.dev/internal/models"
	"folio.dev/internal/storage"
)

const (
	themeKey   = "theme"
	themeDark  = "dark"
	themeLight = "light"
)

// PreferenceStore persists per-visitor settings
type PreferenceStore interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Set(ctx context.Context, visitorID, key, value string) error
	Swap(ctx context.Context, visitorID, key, a, b, initial string) (string, error)
}

// ThemeService tracks the light/dark flag for each visitor
type ThemeService struct {
	store PreferenceStore
	log   *slog.Logger
}

// NewThemeService creates a new ThemeService
func NewThemeService(store PreferenceStore, log *slog.Logger) *ThemeService {
	return &ThemeService{store: store, log: log}
}

// Toggle flips the flag
func Toggle(t models.ThemeState) models.ThemeState {
	return models.ThemeState{IsDarkMode: !t.IsDarkMode}
}

// ParseTheme maps a stored value to a state; ok is false for unknown values
func ParseTheme(value string) (state models.ThemeState, ok bool) {
	switch value {
	case themeDark:
		return models.ThemeState{IsDarkMode: true}, true
	case themeLight:
		return models.ThemeState{IsDarkMode: false}, true
	}
	return models.ThemeState{}, false
}

// Resolve returns the persisted theme for visitorID, falling back to the
// system preference when nothing usable is stored.
func (s *ThemeService) Resolve(ctx context.Context, visitorID string, systemPrefersDark bool) models.ThemeState {
	fallback := models.ThemeState{IsDarkMode: systemPrefersDark}
	if visitorID == "" {
		return fallback
	}

	value, err := s.store.Get(ctx, visitorID, themeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("reading theme preference", "visitor", visitorID, "error", err)
		}
		return fallback
	}

	state, ok := ParseTheme(value)
	if !ok {
		return fallback
	}
	return state
}

// Set persists state for visitorID. A failed write is logged and the
// in-memory state is still returned.
func (s *ThemeService) Set(ctx context.Context, visitorID string, state models.ThemeState) models.ThemeState {
	if visitorID == "" {
		return state
	}
	if err := s.store.Set(ctx, visitorID, themeKey, state.ClassName()); err != nil {
		s.log.Warn("persisting theme preference", "visitor", visitorID, "error", err)
	}
	return state
}

// ToggleFor flips the visitor's theme in a single store operation so
// concurrent toggles cannot both read the same starting value. With nothing
// stored, the flip starts from the system preference.
func (s *ThemeService) ToggleFor(ctx context.Context, visitorID string, systemPrefersDark bool) models.ThemeState {
	initial := Toggle(models.ThemeState{IsDarkMode: systemPrefersDark})
	if visitorID == "" {
		return initial
	}

	value, err := s.store.Swap(ctx, visitorID, themeKey, themeDark, themeLight, initial.ClassName())
	if err != nil {
		s.log.Warn("toggling theme preference", "visitor", visitorID, "error", err)
		return Toggle(s.Resolve(ctx, visitorID, systemPrefersDark))
	}

	state, ok := ParseTheme(value)
	if !ok {
		return initial
	}
	return state
}
