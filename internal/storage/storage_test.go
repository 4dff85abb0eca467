package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPreferenceStoreUpsert(t *testing.T) {
	store := NewPreferenceStore(openTestDB(t))
	ctx := context.Background()

	_, err := store.Get(ctx, "v1", "theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "v1", "theme", "dark"))
	require.NoError(t, store.Set(ctx, "v1", "theme", "light"))

	value, err := store.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	_, err = store.Get(ctx, "v2", "theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceStoreSwap(t *testing.T) {
	store := NewPreferenceStore(openTestDB(t))
	ctx := context.Background()

	value, err := store.Swap(ctx, "v1", "theme", "dark", "light", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	value, err = store.Swap(ctx, "v1", "theme", "dark", "light", "dark")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	value, err = store.Swap(ctx, "v1", "theme", "dark", "light", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Set(ctx, "v1", "theme", "sepia"))
	value, err = store.Swap(ctx, "v1", "theme", "dark", "light", "light")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	stored, err := store.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.Equal(t, value, stored)
}

func TestVisitStoreStats(t *testing.T) {
	store := NewVisitStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "aaaa", "test-agent", "/"))
	require.NoError(t, store.Record(ctx, "aaaa", "test-agent", "/projects"))
	require.NoError(t, store.Record(ctx, "bbbb", "test-agent", "/projects"))

	stats, err := store.Stats(ctx, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalViews)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.ViewsToday)
	require.Len(t, stats.TopPaths, 2)
	assert.Equal(t, "/projects", stats.TopPaths[0].Path)
	assert.EqualValues(t, 2, stats.TopPaths[0].Views)
}

func TestVisitStorePrune(t *testing.T) {
	store := NewVisitStore(openTestDB(t))
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, store.Record(ctx, "old", "", "/"))

	store.now = func() time.Time { return now }
	require.NoError(t, store.Record(ctx, "new", "", "/"))

	removed, err := store.Prune(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	stats, err := store.Stats(ctx, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalViews)
}
