package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"folio.dev/internal/models"
)

// VisitStore persists page views
type VisitStore interface {
	Record(ctx context.Context, hashedIP, userAgent, path string) error
	Prune(ctx context.Context, retention time.Duration) (int64, error)
	Stats(ctx context.Context, topN int) (*models.VisitStats, error)
}

// AnalyticsService records page views without storing raw IP addresses
type AnalyticsService struct {
	store VisitStore
	salt  string
	log   *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService. salt is mixed into
// every IP hash so hashes cannot be reversed with a lookup table.
func NewAnalyticsService(store VisitStore, salt string, log *slog.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, salt: salt, log: log}
}

// HashIP returns a stable, truncated hash of ip
func (s *AnalyticsService) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page view
func (s *AnalyticsService) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	return s.store.Record(ctx, s.HashIP(ip), userAgent, path)
}

// Prune removes visits older than retention
func (s *AnalyticsService) Prune(ctx context.Context, retention time.Duration) {
	removed, err := s.store.Prune(ctx, retention)
	if err != nil {
		s.log.Error("pruning visits", "error", err)
		return
	}
	if removed > 0 {
		s.log.Info("pruned old visits", "removed", removed)
	}
}

// Stats returns the aggregated page views
func (s *AnalyticsService) Stats(ctx context.Context) (*models.VisitStats, error) {
	return s.store.Stats(ctx, 10)
}
