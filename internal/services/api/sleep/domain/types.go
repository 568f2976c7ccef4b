// Package domain holds the sleep record types and contracts
package domain

import (
	"time"
)

// Record is a single sleep interval owned by a user.
// WakeAt and DurationSeconds are nil until the interval is closed
type Record struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	SleepAt         time.Time  `json:"sleep_at"`
	WakeAt          *time.Time `json:"wake_at,omitempty"`
	DurationSeconds *int64     `json:"duration_seconds,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Completed reports whether the interval has been closed
func (r Record) Completed() bool { return r.WakeAt != nil }

// ComputeDuration returns wake - sleep in whole seconds, truncating any
// fractional second toward zero. Wake before sleep yields a negative
// duration; callers decide policy
func ComputeDuration(sleepAt, wakeAt time.Time) int64 {
	return int64(wakeAt.Sub(sleepAt) / time.Second)
}
