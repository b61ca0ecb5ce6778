package fitness

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"fitlife/internal/storage"
)

// DailyGoal is the fixed step target progress is measured against.
const DailyGoal = 10000

// readSteps returns the step counter, 0 when absent.
func readSteps(ctx context.Context, store storage.Store) (int, error) {
	raw, ok, err := store.Get(ctx, storage.KeySteps)
	if err != nil {
		return 0, fmt.Errorf("failed to read steps: %w", err)
	}
	if !ok {
		return 0, nil
	}
	steps, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse steps %q: %w", raw, err)
	}
	return steps, nil
}

// ActivityTracker owns the step counter and derives goal progress from it.
type ActivityTracker struct {
	store    storage.Store
	sessions *SessionManager
	history  *HistoryAggregator
}

func NewActivityTracker(store storage.Store, sessions *SessionManager, history *HistoryAggregator) *ActivityTracker {
	return &ActivityTracker{store: store, sessions: sessions, history: history}
}

func (t *ActivityTracker) requireAuth(ctx context.Context) error {
	ok, err := t.sessions.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// AddSteps adds a positive amount to the counter. Today's running total is
// snapshotted into the history archive before the counter is mutated, so a
// crash between the two writes can lose the increment but never the
// archived total. ErrNotAuthenticated without a session.
func (t *ActivityTracker) AddSteps(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if err := t.requireAuth(ctx); err != nil {
		return err
	}

	if err := t.history.SnapshotToday(ctx); err != nil {
		return err
	}

	steps, err := readSteps(ctx, t.store)
	if err != nil {
		return err
	}
	if err := t.store.Set(ctx, storage.KeySteps, strconv.Itoa(steps+amount)); err != nil {
		return fmt.Errorf("failed to write steps: %w", err)
	}
	return nil
}

// ResetSteps sets the counter back to zero.
func (t *ActivityTracker) ResetSteps(ctx context.Context) error {
	if err := t.requireAuth(ctx); err != nil {
		return err
	}
	if err := t.store.Set(ctx, storage.KeySteps, "0"); err != nil {
		return fmt.Errorf("failed to reset steps: %w", err)
	}
	return nil
}

// CurrentSteps returns the step counter, 0 when absent.
func (t *ActivityTracker) CurrentSteps(ctx context.Context) (int, error) {
	return readSteps(ctx, t.store)
}

// ProgressPercent returns min(round(steps/DailyGoal*100), 100). Rounding is
// half away from zero; the result never exceeds 100 even when the counter
// does.
func (t *ActivityTracker) ProgressPercent(ctx context.Context) (int, error) {
	steps, err := readSteps(ctx, t.store)
	if err != nil {
		return 0, err
	}

	percent := int(math.Round(float64(steps) / DailyGoal * 100))
	if percent > 100 {
		percent = 100
	}
	return percent, nil
}
