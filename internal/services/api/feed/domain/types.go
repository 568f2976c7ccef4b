// Package domain holds the feed types and ports
package domain

import (
	"context"
	"time"

	"driftlog/internal/modkit/pagekit"
)

// Item is one completed sleep record in a user's feed, enriched with the
// sleeper's display name
type Item struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserName        string    `json:"user_name"`
	SleepAt         time.Time `json:"sleep_at"`
	WakeAt          time.Time `json:"wake_at"`
	DurationSeconds int64     `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// ServicePort is the feed surface the HTTP transport consumes
type ServicePort interface {
	// Feed returns the viewer's ranked weekly feed: completed records from
	// followed users, longest sleep first
	Feed(ctx context.Context, userID string, page, pageSize int) ([]Item, pagekit.Info, error)
}
