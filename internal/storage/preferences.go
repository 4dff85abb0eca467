package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a visitor has no stored value for a key
var ErrNotFound = errors.New("preference not found")

// PreferenceStore persists per-visitor key/value settings
type PreferenceStore struct {
	db *DB
}

// NewPreferenceStore creates a PreferenceStore backed by the given database
func NewPreferenceStore(db *DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Get returns the stored value or ErrNotFound
func (s *PreferenceStore) Get(ctx context.Context, visitorID, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for visitorID/key
func (s *PreferenceStore) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		visitorID, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// Swap atomically flips the value for visitorID/key between a and b. A
// missing row, or a stored value that is neither, is set to initial. The
// new value is returned.
func (s *PreferenceStore) Swap(ctx context.Context, visitorID, key, a, b, initial string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (visitor_id, key) DO UPDATE SET
			value = CASE preferences.value
				WHEN ? THEN ?
				WHEN ? THEN ?
				ELSE excluded.value
			END,
			updated_at = excluded.updated_at
		RETURNING value`,
		visitorID, key, initial, a, b, b, a,
	).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("swapping preference %s: %w", key, err)
	}
	return value, nil
}
