package fitness

import "time"

// Clock abstracts wall-clock time so tests can pin dates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock reading the real wall clock.
func SystemClock() Clock { return systemClock{} }
