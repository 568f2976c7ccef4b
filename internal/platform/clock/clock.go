// Package clock provides an injectable time source
package clock

import "time"

// Clock yields the current instant
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant, useful in tests
type Fixed struct{ T time.Time }

// Now returns the fixed instant
func (f Fixed) Now() time.Time { return f.T }
