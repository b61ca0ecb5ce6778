package fitness

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/storage"
)

func setupActivity(t *testing.T, date string) (*storage.MemStore, *SessionManager, *ActivityTracker, *HistoryAggregator) {
	t.Helper()
	store := storage.NewMemStore()
	sessions := NewSessionManager(store)
	history := NewHistoryAggregator(store, day(t, date))
	activity := NewActivityTracker(store, sessions, history)
	return store, sessions, activity, history
}

func loginAs(t *testing.T, m *SessionManager, user, pass string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.Register(ctx, user, pass))
	require.NoError(t, m.Login(ctx, user, pass))
}

func TestAddSteps_AccumulatesMonotonically(t *testing.T) {
	_, sessions, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()
	loginAs(t, sessions, "alice", "1234")

	require.NoError(t, activity.AddSteps(ctx, 3000))
	steps, err := activity.CurrentSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3000, steps)

	require.NoError(t, activity.AddSteps(ctx, 4000))
	steps, err = activity.CurrentSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7000, steps)
}

func TestAddSteps_RejectsNonPositiveAmount(t *testing.T) {
	_, sessions, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()
	loginAs(t, sessions, "alice", "1234")

	require.ErrorIs(t, activity.AddSteps(ctx, 0), ErrNonPositiveAmount)
	require.ErrorIs(t, activity.AddSteps(ctx, -100), ErrNonPositiveAmount)

	steps, err := activity.CurrentSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, steps)
}

func TestAddSteps_RequiresSession(t *testing.T) {
	store, _, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()

	require.ErrorIs(t, activity.AddSteps(ctx, 100), ErrNotAuthenticated)

	_, ok, err := store.Get(ctx, storage.KeySteps)
	require.NoError(t, err)
	assert.False(t, ok, "denied mutation must not write")
}

func TestAddSteps_SnapshotsBeforeMutating(t *testing.T) {
	_, sessions, activity, history := setupActivity(t, "2026-09-01")
	ctx := context.Background()
	loginAs(t, sessions, "alice", "1234")

	require.NoError(t, activity.AddSteps(ctx, 3000))

	// The archive holds the total as it was before the increment.
	series, err := history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 0, series[0].Steps)

	require.NoError(t, activity.AddSteps(ctx, 4000))
	series, err = history.RecentSeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 3000, series[0].Steps)
}

func TestResetSteps(t *testing.T) {
	_, sessions, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()

	require.ErrorIs(t, activity.ResetSteps(ctx), ErrNotAuthenticated)

	loginAs(t, sessions, "alice", "1234")
	require.NoError(t, activity.AddSteps(ctx, 500))
	require.NoError(t, activity.ResetSteps(ctx))

	steps, err := activity.CurrentSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, steps)
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		steps string
		want  int
	}{
		{"0", 0},
		{"49", 0},     // 0.49% rounds down
		{"50", 1},     // 0.5% rounds half away from zero
		{"5000", 50},
		{"7000", 70},
		{"9999", 100}, // 99.99% rounds to 100
		{"10000", 100},
		{"25000", 100}, // clamped
	}

	for _, tt := range tests {
		t.Run(tt.steps+" steps", func(t *testing.T) {
			store, _, activity, _ := setupActivity(t, "2026-09-01")
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, storage.KeySteps, tt.steps))

			got, err := activity.ProgressPercent(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)

			// Re-reads are idempotent.
			again, err := activity.ProgressPercent(ctx)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestScenario_RegisterLoginAddStepsProgress(t *testing.T) {
	_, sessions, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()

	require.NoError(t, sessions.Register(ctx, "alice", "1234"))
	require.NoError(t, sessions.Login(ctx, "alice", "1234"))
	require.NoError(t, activity.AddSteps(ctx, 3000))
	require.NoError(t, activity.AddSteps(ctx, 4000))

	percent, err := activity.ProgressPercent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, percent)
}

func TestCurrentSteps_ParsesStoredText(t *testing.T) {
	store, _, activity, _ := setupActivity(t, "2026-09-01")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySteps, strconv.Itoa(1234)))

	steps, err := activity.CurrentSteps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1234, steps)
}
