// Package clock provides the production time source.
package clock

import (
	"time"

	"proximity/internal/domain/service"
)

// SystemClock reads the current system time.
type SystemClock struct{}

// New returns a SystemClock as a service.Clock.
func New() service.Clock {
	return &SystemClock{}
}

// Now returns the current system time.
func (*SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a clock frozen at one instant, used by tests and replays.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
