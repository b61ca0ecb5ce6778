package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fitlife/internal/fitness"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates the account.
// Validation failures are shown to the user, not returned: they are
// correctable input, not faults.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.core.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, fitness.ErrEmptyUsername):
			fmt.Println("Please enter a username.")
		case errors.Is(err, fitness.ErrWeakPassword):
			fmt.Println("Password must be at least 4 characters.")
		default:
			return err
		}
		return nil
	}

	fmt.Println("Registered successfully! Please login.")
	return a.navigate(ctx, string(fitness.ScreenLogin))
}

// Login prompts for credentials and opens a session. A missing account sends
// the user to the register screen, mirroring the first-run flow.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.core.Login(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, fitness.ErrNoAccount):
			fmt.Println("No account found. Please register first.")
			return a.navigate(ctx, string(fitness.ScreenRegister))
		case errors.Is(err, fitness.ErrBadCredentials):
			fmt.Println("Wrong username or password.")
			return nil
		default:
			return err
		}
	}

	return a.navigate(ctx, string(fitness.ScreenMenu))
}

// Logout closes the session and returns to the landing screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.core.Logout(ctx); err != nil {
		return err
	}
	return a.navigate(ctx, string(fitness.ScreenLanding))
}

// ResetAccount asks for explicit confirmation, then wipes the account and
// all data. The confirmation lives here: the core treats it as a
// precondition, not a side effect.
func (a *App) ResetAccount(ctx context.Context) error {
	ok := GetConfirmation(a.reader,
		"Reset account and delete all data? This cannot be undone.", os.Stdout)
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.core.ResetAccount(ctx); err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return a.navigate(ctx, string(fitness.ScreenLanding))
}
