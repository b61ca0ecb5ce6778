// Package app wires the core components together and exposes the surface the
// presentation layer calls: bootstrap, navigation, and the session, activity,
// mood and history operations.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fitlife/internal/fitness"
	"fitlife/internal/logging"
	"fitlife/internal/storage"
)

// NavResult is what the presentation layer renders after a navigation
// request: the screen actually allowed, and whether the bottom menu chrome
// is visible.
type NavResult struct {
	EffectiveScreen fitness.Screen
	ShowChrome      bool
}

// App is the facade over the core. It holds no state of its own; everything
// lives in the store.
type App struct {
	store    storage.Store
	log      logging.Logger
	sessions *fitness.SessionManager
	activity *fitness.ActivityTracker
	mood     *fitness.MoodTracker
	history  *fitness.HistoryAggregator
}

func New(store storage.Store, clock fitness.Clock, log logging.Logger) *App {
	sessions := fitness.NewSessionManager(store)
	history := fitness.NewHistoryAggregator(store, clock)
	return &App{
		store:    store,
		log:      log,
		sessions: sessions,
		activity: fitness.NewActivityTracker(store, sessions, history),
		mood:     fitness.NewMoodTracker(store, sessions),
		history:  history,
	}
}

// Bootstrap runs once per process start. It purges legacy keys exactly once
// (gated by a persisted flag), mints the install id on first run, and clears
// the session so every start requires a fresh login.
func (a *App) Bootstrap(ctx context.Context) error {
	_, done, err := a.store.Get(ctx, storage.KeyResetDone)
	if err != nil {
		return fmt.Errorf("failed to read migration flag: %w", err)
	}
	if !done {
		err := a.store.Update(ctx, func(ctx context.Context, s storage.Store) error {
			for _, key := range storage.LegacyKeys {
				if err := s.Delete(ctx, key); err != nil {
					return err
				}
			}
			return s.Set(ctx, storage.KeyResetDone, "1")
		})
		if err != nil {
			return fmt.Errorf("failed to purge legacy keys: %w", err)
		}
		a.log.Info(ctx, "purged legacy keys")
	}

	_, ok, err := a.store.Get(ctx, storage.KeyInstallID)
	if err != nil {
		return fmt.Errorf("failed to read install id: %w", err)
	}
	if !ok {
		id := uuid.NewString()
		if err := a.store.Set(ctx, storage.KeyInstallID, id); err != nil {
			return fmt.Errorf("failed to store install id: %w", err)
		}
		a.log.Info(ctx, "minted install id", "installID", id)
	}

	// No auto-login across restarts.
	if err := a.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Navigate resolves the requested screen against the current session state.
func (a *App) Navigate(ctx context.Context, screenID string) (NavResult, error) {
	authenticated, err := a.sessions.IsAuthenticated(ctx)
	if err != nil {
		return NavResult{}, err
	}
	effective, chrome := fitness.Resolve(fitness.Screen(screenID), authenticated)
	return NavResult{EffectiveScreen: effective, ShowChrome: chrome}, nil
}

// GoBack navigates to the hard-coded back target.
func (a *App) GoBack(ctx context.Context) (NavResult, error) {
	return a.Navigate(ctx, string(fitness.GoBack()))
}

// Session operations. Sentinel failures (fitness.ErrNoAccount etc.) are
// results for the caller to display, not faults.

func (a *App) Register(ctx context.Context, username, password string) error {
	return a.sessions.Register(ctx, username, password)
}

func (a *App) Login(ctx context.Context, username, password string) error {
	return a.sessions.Login(ctx, username, password)
}

func (a *App) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

// ResetAccount wipes the account and all tracker data. The caller must have
// obtained explicit confirmation first.
func (a *App) ResetAccount(ctx context.Context) error {
	if err := a.sessions.ResetAccount(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "account reset, all data cleared")
	return nil
}

func (a *App) IsAuthenticated(ctx context.Context) (bool, error) {
	return a.sessions.IsAuthenticated(ctx)
}

func (a *App) CurrentUser(ctx context.Context) (string, error) {
	return a.sessions.CurrentUser(ctx)
}

// redirect translates ErrNotAuthenticated into the silent landing redirect.
// Other errors pass through.
func (a *App) redirect(err error) (*NavResult, error) {
	if err == nil {
		return nil, nil
	}
	if errors.Is(err, fitness.ErrNotAuthenticated) {
		return &NavResult{EffectiveScreen: fitness.ScreenLanding, ShowChrome: false}, nil
	}
	return nil, err
}

// AddSteps adds to the counter. A non-nil NavResult means the caller was not
// authenticated and must render the landing screen instead; no error is
// surfaced for that case.
func (a *App) AddSteps(ctx context.Context, amount int) (*NavResult, error) {
	return a.redirect(a.activity.AddSteps(ctx, amount))
}

// ResetSteps zeroes the counter, with the same redirect policy as AddSteps.
func (a *App) ResetSteps(ctx context.Context) (*NavResult, error) {
	return a.redirect(a.activity.ResetSteps(ctx))
}

func (a *App) CurrentSteps(ctx context.Context) (int, error) {
	return a.activity.CurrentSteps(ctx)
}

func (a *App) ProgressPercent(ctx context.Context) (int, error) {
	return a.activity.ProgressPercent(ctx)
}

// SetMood records today's mood, with the same redirect policy as AddSteps.
// fitness.ErrUnknownMood still surfaces as an error.
func (a *App) SetMood(ctx context.Context, label string) (*NavResult, error) {
	return a.redirect(a.mood.SetMood(ctx, label))
}

func (a *App) MoodDisplay(ctx context.Context) (fitness.MoodDisplay, error) {
	return a.mood.Display(ctx)
}

// SnapshotToday archives today's running total; the stats screen calls this
// before charting so the chart always includes today.
func (a *App) SnapshotToday(ctx context.Context) error {
	return a.history.SnapshotToday(ctx)
}

func (a *App) RecentSeries(ctx context.Context, n int) ([]fitness.DaySteps, error) {
	return a.history.RecentSeries(ctx, n)
}
