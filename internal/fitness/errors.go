// Package fitness contains the core of the FitLife client: the session
// manager, the navigation guard, and the step/mood/history trackers. All
// state lives in the injected storage.Store; components never cache values
// across operations, so every read reflects the latest write.
package fitness

import "errors"

// Sentinel errors returned by core operations. Callers match them with
// errors.Is and turn them into user-facing messages; none of them is a fault
// worth logging or retrying.
var (
	// Registration validation.
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrWeakPassword  = errors.New("password must be at least 4 characters")

	// Login.
	ErrNoAccount      = errors.New("no account found")
	ErrBadCredentials = errors.New("wrong username or password")

	// Access policy. The app facade translates this into a silent redirect
	// to the landing screen; it is never shown to the user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Trackers.
	ErrNonPositiveAmount = errors.New("step amount must be positive")
	ErrUnknownMood       = errors.New("unknown mood label")
)
