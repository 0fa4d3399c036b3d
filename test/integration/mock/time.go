package mock

import (
	"sync"
	"time"
)

// Time is a settable clock for scenarios that need to stand on a
// specific date, such as crossing a month boundary. It keeps ticking
// from the set point so elapsed-time behavior stays realistic.
type Time struct {
	mu    sync.Mutex
	base  time.Time
	setAt time.Time
}

// NewTime creates a clock starting at the real current time.
func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{base: now, setAt: now}
}

// SetCurrentTime moves the clock to the given instant.
func (t *Time) SetCurrentTime(current time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.base = current
	t.setAt = time.Now().UTC()
}

// Now returns the mocked current time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.base.Add(time.Since(t.setAt))
}
