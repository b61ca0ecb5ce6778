package cli

import (
	"context"
	"fmt"

	"fitlife/internal/fitness"
)

// render prints the current screen's content. All values are fetched through
// the core on every render, so the display always reflects the latest write.
func (a *App) render(ctx context.Context) error {
	switch a.screen {
	case fitness.ScreenLanding:
		fmt.Println("Welcome to FitLife. Commands: register, login")

	case fitness.ScreenLogin:
		fmt.Println("Login screen. Command: login")

	case fitness.ScreenRegister:
		fmt.Println("Register screen. Command: register")

	case fitness.ScreenMenu, fitness.ScreenProfile:
		user, err := a.core.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if a.screen == fitness.ScreenMenu {
			fmt.Printf("Welcome, %s!\n", user)
		} else {
			fmt.Printf("User: %s\n", user)
		}

	case fitness.ScreenSteps:
		steps, err := a.core.CurrentSteps(ctx)
		if err != nil {
			return err
		}
		percent, err := a.core.ProgressPercent(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d steps, %d%% of the %d goal\n", steps, percent, fitness.DailyGoal)

	case fitness.ScreenMood:
		display, err := a.core.MoodDisplay(ctx)
		if err != nil {
			return err
		}
		fmt.Println(display.Text)
		if display.HintVisible {
			fmt.Println("Pick one mood above to save it.")
		}

	case fitness.ScreenStats:
		// Archive today before charting so the chart always includes it.
		if err := a.core.SnapshotToday(ctx); err != nil {
			return err
		}
		series, err := a.core.RecentSeries(ctx, 7)
		if err != nil {
			return err
		}
		fmt.Print(renderChart(series))

	case fitness.ScreenAbout:
		fmt.Println("FitLife — a local, offline step and mood tracker.")
	}

	if a.chrome {
		fmt.Println("[menu] steps | mood | stats | profile | about")
	}
	return nil
}
