package fitness

import (
	"context"
	"fmt"
	"strings"

	"fitlife/internal/storage"
)

// SessionManager owns the stored credential and the session flag.
//
// This is a deliberately insecure demo login: the credential is stored and
// compared in plaintext, and there is at most one account at a time.
// Re-registration overwrites the previous credential wholesale.
type SessionManager struct {
	store storage.Store
}

func NewSessionManager(store storage.Store) *SessionManager {
	return &SessionManager{store: store}
}

// Register validates and stores the credential. The username must be
// non-empty and the password at least 4 characters, both after trimming.
func (m *SessionManager) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" {
		return ErrEmptyUsername
	}
	if len(password) < 4 {
		return ErrWeakPassword
	}

	if err := m.store.Set(ctx, storage.KeyRegisteredUser, username); err != nil {
		return fmt.Errorf("failed to store username: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyRegisteredPass, password); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}

// Login compares the trimmed inputs against the stored credential and opens
// a session on success. ErrNoAccount when nothing is registered,
// ErrBadCredentials on mismatch.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	savedUser, okUser, err := m.store.Get(ctx, storage.KeyRegisteredUser)
	if err != nil {
		return fmt.Errorf("failed to read stored username: %w", err)
	}
	savedPass, okPass, err := m.store.Get(ctx, storage.KeyRegisteredPass)
	if err != nil {
		return fmt.Errorf("failed to read stored password: %w", err)
	}
	if !okUser || !okPass {
		return ErrNoAccount
	}

	if username != savedUser || password != savedPass {
		return ErrBadCredentials
	}

	if err := m.store.Set(ctx, storage.KeySession, username); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	return nil
}

// Logout clears the session. Idempotent.
func (m *SessionManager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, storage.KeySession)
}

// ResetAccount deletes the credential, the session, and all tracker data as
// one atomic unit. The caller must have obtained explicit confirmation
// before calling; the core does no prompting.
func (m *SessionManager) ResetAccount(ctx context.Context) error {
	return m.store.Update(ctx, func(ctx context.Context, s storage.Store) error {
		for _, key := range []string{
			storage.KeyRegisteredUser,
			storage.KeyRegisteredPass,
			storage.KeySession,
			storage.KeySteps,
			storage.KeyMood,
			storage.KeyStepHistory,
		} {
			if err := s.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// IsAuthenticated reports whether a session is open.
func (m *SessionManager) IsAuthenticated(ctx context.Context) (bool, error) {
	_, ok, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return ok, nil
}

// CurrentUser returns the session username, or "" when no session is open.
func (m *SessionManager) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return user, nil
}
