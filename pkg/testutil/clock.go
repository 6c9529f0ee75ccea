// pkg/testutil/clock.go
// DEPENDENCIES: None
// PURPOSE: Deterministic time for backup naming and timestamps

package testutil

import "time"

// Clock returns increasing times, one Step apart
type Clock struct {
	Current time.Time
	Step    time.Duration
}

// NewClock returns a clock starting at a fixed UTC instant with a one second step
func NewClock() *Clock {
	return &Clock{
		Current: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Step:    time.Second,
	}
}

// Now advances the clock and returns the new time
func (c *Clock) Now() time.Time {
	c.Current = c.Current.Add(c.Step)
	return c.Current
}

// Last returns the most recent reading without advancing
func (c *Clock) Last() time.Time {
	return c.Current
}
