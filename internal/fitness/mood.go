package fitness

import (
	"context"
	"fmt"

	"fitlife/internal/storage"
)

// Mood labels. The set is fixed; anything else is ErrUnknownMood.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// Moods lists the accepted labels in display order.
var Moods = []string{MoodHappy, MoodNeutral, MoodSad}

// MoodDisplay is the view-level rendering of today's mood.
type MoodDisplay struct {
	Text        string
	HintVisible bool
}

// MoodTracker owns the single "mood of today" value. No mood history is
// kept; setting a mood overwrites the previous one.
type MoodTracker struct {
	store    storage.Store
	sessions *SessionManager
}

func NewMoodTracker(store storage.Store, sessions *SessionManager) *MoodTracker {
	return &MoodTracker{store: store, sessions: sessions}
}

// SetMood records today's mood. ErrUnknownMood for a label outside the fixed
// set, ErrNotAuthenticated without a session.
func (t *MoodTracker) SetMood(ctx context.Context, label string) error {
	valid := false
	for _, m := range Moods {
		if label == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrUnknownMood, label)
	}

	ok, err := t.sessions.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthenticated
	}

	if err := t.store.Set(ctx, storage.KeyMood, label); err != nil {
		return fmt.Errorf("failed to write mood: %w", err)
	}
	return nil
}

// Display returns the "Today: X" text when a mood is set, else a placeholder
// with the hint flag raised.
func (t *MoodTracker) Display(ctx context.Context) (MoodDisplay, error) {
	mood, ok, err := t.store.Get(ctx, storage.KeyMood)
	if err != nil {
		return MoodDisplay{}, fmt.Errorf("failed to read mood: %w", err)
	}
	if !ok {
		return MoodDisplay{Text: "No mood selected today.", HintVisible: true}, nil
	}
	return MoodDisplay{Text: "Today: " + mood, HintVisible: false}, nil
}
