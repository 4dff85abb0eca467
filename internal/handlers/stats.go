package handlers

import (
	"net/http"

	"folio.dev/internal/apperror"
	"folio.dev/internal/services"
)

// StatsHandler exposes aggregated page views
type StatsHandler struct {
	analytics *services.AnalyticsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(as *services.AnalyticsService) *StatsHandler {
	return &StatsHandler{analytics: as}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		respondError(w, apperror.Internal(err))
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
