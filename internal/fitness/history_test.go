package fitness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/storage"
)

func TestSnapshotToday_WritesCurrentSteps(t *testing.T) {
	store := storage.NewMemStore()
	history := NewHistoryAggregator(store, day(t, "2026-09-01"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySteps, "4200"))
	require.NoError(t, history.SnapshotToday(ctx))

	series, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, DaySteps{Date: "2026-09-01", Steps: 4200}, series[0])
}

func TestSnapshotToday_IsIdempotentWithinADay(t *testing.T) {
	store := storage.NewMemStore()
	history := NewHistoryAggregator(store, day(t, "2026-09-01"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySteps, "4200"))
	require.NoError(t, history.SnapshotToday(ctx))

	before, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, history.SnapshotToday(ctx))

	after, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSnapshotToday_OverwritesSameDay(t *testing.T) {
	store := storage.NewMemStore()
	history := NewHistoryAggregator(store, day(t, "2026-09-01"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySteps, "1000"))
	require.NoError(t, history.SnapshotToday(ctx))

	require.NoError(t, store.Set(ctx, storage.KeySteps, "2500"))
	require.NoError(t, history.SnapshotToday(ctx))

	series, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 1, "same day must overwrite, never append")
	assert.Equal(t, 2500, series[0].Steps)
}

func TestSnapshotToday_MissingCounterArchivesZero(t *testing.T) {
	store := storage.NewMemStore()
	history := NewHistoryAggregator(store, day(t, "2026-09-01"))
	ctx := context.Background()

	require.NoError(t, history.SnapshotToday(ctx))

	series, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 0, series[0].Steps)
}

func TestRecentSeries_EmptyArchive(t *testing.T) {
	history := NewHistoryAggregator(storage.NewMemStore(), day(t, "2026-09-01"))

	series, err := history.RecentSeries(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func snapshotOn(t *testing.T, store storage.Store, date string, steps string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeySteps, steps))
	h := NewHistoryAggregator(store, day(t, date))
	require.NoError(t, h.SnapshotToday(ctx))
}

func TestRecentSeries_ReturnsTrailingDaysOldestFirst(t *testing.T) {
	store := storage.NewMemStore()

	for i, date := range []string{
		"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31",
	} {
		snapshotOn(t, store, date, []string{"100", "200", "300", "400", "500", "600", "700", "800"}[i])
	}

	history := NewHistoryAggregator(store, day(t, "2026-08-31"))
	series, err := history.RecentSeries(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, series, 7)
	assert.Equal(t, "2026-08-25", series[0].Date, "oldest of the trailing 7")
	assert.Equal(t, "2026-08-31", series[6].Date)
	assert.Equal(t, 200, series[0].Steps)
	assert.Equal(t, 800, series[6].Steps)
}

func TestRecentSeries_SortsByDateNotInsertionOrder(t *testing.T) {
	store := storage.NewMemStore()

	// A clock rollback inserts an older date after a newer one.
	snapshotOn(t, store, "2026-09-01", "900")
	snapshotOn(t, store, "2026-08-30", "300")

	history := NewHistoryAggregator(store, day(t, "2026-09-01"))
	series, err := history.RecentSeries(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, "2026-08-30", series[0].Date)
	assert.Equal(t, "2026-09-01", series[1].Date)
}

func TestRecentSeries_NonPositiveNReturnsAll(t *testing.T) {
	store := storage.NewMemStore()
	snapshotOn(t, store, "2026-08-30", "1")
	snapshotOn(t, store, "2026-08-31", "2")

	history := NewHistoryAggregator(store, day(t, "2026-08-31"))
	series, err := history.RecentSeries(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, series, 2)
}
