package storage

import (
	"context"
	"fmt"
	"time"

	"folio.dev/internal/models"
)

// VisitStore records privacy-preserving page views
type VisitStore struct {
	db  *DB
	now func() time.Time
}

// NewVisitStore creates a VisitStore backed by the given database
func NewVisitStore(db *DB) *VisitStore {
	return &VisitStore{db: db, now: time.Now}
}

// Record inserts one page view. hashedIP must already be hashed.
func (s *VisitStore) Record(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Prune deletes visits older than retention and returns how many were removed
func (s *VisitStore) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)
	result, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning visits: %w", err)
	}
	return result.RowsAffected()
}

// Stats aggregates the recorded visits
func (s *VisitStore) Stats(ctx context.Context, topN int) (*models.VisitStats, error) {
	stats := &models.VisitStats{TopPaths: []models.PathViewCount{}}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visits`,
	).Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("counting visits: %w", err)
	}

	startOfDay := s.now().UTC().Truncate(24 * time.Hour)
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, startOfDay,
	).Scan(&stats.ViewsToday)
	if err != nil {
		return nil, fmt.Errorf("counting today's visits: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visits
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?`, topN)
	if err != nil {
		return nil, fmt.Errorf("querying top paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.PathViewCount
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, fmt.Errorf("scanning top path: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	return stats, rows.Err()
}
