// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pokedex-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock that never advances, for tests and golden output.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.At
}

// Since measures against the fixed instant
func (c *Fixed) Since(t time.Time) time.Duration {
	return c.At.Sub(t)
}
