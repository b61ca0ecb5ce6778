package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fitlife/internal/app"
	"fitlife/internal/fitness"
)

func (a *App) getStatus() string {
	if a.screen == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.screen)
}

// Root runs the read–eval–print loop. It reads a line, parses the first
// token as the command, and dispatches. The loop exits on EOF or "exit".
func (a *App) Root(ctx context.Context) {
	fmt.Println("FitLife (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	_ = a.navigate(ctx, string(fitness.ScreenLanding))
	a.show(ctx)

	for {
		fmt.Printf("fitlife %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.help(ctx)

		case "open":
			if len(args) == 0 {
				fmt.Println("Usage: open <screen>")
				continue
			}
			err = a.navigate(ctx, args[0])
			a.show(ctx)

		case "back":
			var res app.NavResult
			res, err = a.core.GoBack(ctx)
			if err == nil {
				a.setNav(res)
				a.show(ctx)
			}

		case "register":
			err = a.Register(ctx)
			a.show(ctx)

		case "login":
			err = a.Login(ctx)
			a.show(ctx)

		case "logout":
			err = a.Logout(ctx)
			a.show(ctx)

		case "reset":
			err = a.ResetAccount(ctx)
			a.show(ctx)

		case "add":
			if len(args) == 0 {
				fmt.Println("Usage: add <steps>")
				continue
			}
			err = a.addSteps(ctx, args[0])

		case "resetsteps":
			err = a.resetSteps(ctx)

		case "mood":
			if len(args) == 0 {
				fmt.Printf("Usage: mood <%s>\n", strings.Join(fitness.Moods, "|"))
				continue
			}
			err = a.setMood(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
		}

		if err != nil {
			a.log.Error(ctx, "command failed", "cmd", cmd, "err", err)
		}
	}
}

func (a *App) help(ctx context.Context) {
	authenticated, err := a.core.IsAuthenticated(ctx)
	if err != nil {
		a.log.Error(ctx, "session check failed", "err", err)
		return
	}
	if authenticated {
		fmt.Println("Commands: open <screen>, back, add <steps>, resetsteps, mood <label>, logout, reset, exit")
	} else {
		fmt.Println("Commands: register, login, open <screen>, exit")
	}
}

func (a *App) show(ctx context.Context) {
	if err := a.render(ctx); err != nil {
		a.log.Error(ctx, "render failed", "screen", string(a.screen), "err", err)
	}
}

func (a *App) addSteps(ctx context.Context, arg string) error {
	amount, err := strconv.Atoi(arg)
	if err != nil || amount <= 0 {
		fmt.Println("Steps must be a positive number.")
		return nil
	}

	redirect, err := a.core.AddSteps(ctx, amount)
	if err != nil {
		return err
	}
	if redirect != nil {
		a.setNav(*redirect)
		a.show(ctx)
		return nil
	}

	return a.refreshSteps(ctx)
}

func (a *App) resetSteps(ctx context.Context) error {
	redirect, err := a.core.ResetSteps(ctx)
	if err != nil {
		return err
	}
	if redirect != nil {
		a.setNav(*redirect)
		a.show(ctx)
		return nil
	}
	return a.refreshSteps(ctx)
}

func (a *App) refreshSteps(ctx context.Context) error {
	steps, err := a.core.CurrentSteps(ctx)
	if err != nil {
		return err
	}
	percent, err := a.core.ProgressPercent(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d steps, %d%%\n", steps, percent)
	return nil
}

func (a *App) setMood(ctx context.Context, label string) error {
	redirect, err := a.core.SetMood(ctx, label)
	if err != nil {
		if errors.Is(err, fitness.ErrUnknownMood) {
			fmt.Printf("Unknown mood. Pick one of: %s\n", strings.Join(fitness.Moods, ", "))
			return nil
		}
		return err
	}
	if redirect != nil {
		a.setNav(*redirect)
		a.show(ctx)
		return nil
	}

	display, err := a.core.MoodDisplay(ctx)
	if err != nil {
		return err
	}
	fmt.Println(display.Text)
	return nil
}
