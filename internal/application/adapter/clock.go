// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies wall-clock time to the use cases. The snapshot manager
// derives "current month" and "previous month" from it, so tests inject
// a controllable implementation instead of reading the global clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
