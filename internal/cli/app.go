// Package cli is the terminal presentation layer. It renders screens,
// collects input, and calls into the app facade; it owns no tracking state
// of its own.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"fitlife/internal/app"
	"fitlife/internal/config"
	"fitlife/internal/fitness"
	"fitlife/internal/logging"
	"fitlife/internal/storage"

	_ "modernc.org/sqlite"
)

// App drives the REPL. screen/chrome mirror the last NavResult; they are
// presentation state only, the core re-resolves on every navigation.
type App struct {
	cfg    *config.Config
	core   *app.App
	log    logging.Logger
	reader *bufio.Reader
	screen fitness.Screen
	chrome bool
}

// NewApp opens the local database, wires the core, and runs bootstrap. The
// returned cleanup closes the database.
func NewApp(cfg *config.Config, log logging.Logger) (*App, func(), error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	core := app.New(storage.NewSQLiteStore(db), fitness.SystemClock(), log)
	if err := core.Bootstrap(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	a := &App{
		cfg:    cfg,
		core:   core,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		screen: fitness.ScreenLanding,
	}
	return a, cleanup, nil
}

// Run starts the snapshot watcher and the REPL, blocking until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	go a.StartSnapshotWatcher(ctx, a.cfg.SnapshotInterval)
	a.Root(ctx)
}

// StartSnapshotWatcher periodically archives today's running step total
// while a user is logged in, so a day boundary crossed mid-session still
// lands in the history archive.
func (a *App) StartSnapshotWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			authenticated, err := a.core.IsAuthenticated(ctx)
			if err != nil {
				a.log.Error(ctx, "snapshot watcher: session check failed", "err", err)
				continue
			}
			if !authenticated {
				continue
			}
			if err := a.core.SnapshotToday(ctx); err != nil {
				a.log.Error(ctx, "snapshot watcher: snapshot failed", "err", err)
			}

		case <-ctx.Done():
			return
		}
	}
}

// navigate asks the core to resolve the requested screen and records the
// outcome for rendering.
func (a *App) navigate(ctx context.Context, screenID string) error {
	res, err := a.core.Navigate(ctx, screenID)
	if err != nil {
		return err
	}
	a.setNav(res)
	return nil
}

func (a *App) setNav(res app.NavResult) {
	a.screen = res.EffectiveScreen
	a.chrome = res.ShowChrome
}
