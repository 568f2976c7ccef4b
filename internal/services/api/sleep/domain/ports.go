package domain

import (
	"context"
	"time"

	"driftlog/internal/modkit/pagekit"
)

// ServicePort defines the sleep service interface
type ServicePort interface {
	Create(ctx context.Context, userID string, in CreateInput) (Record, error)
	SetWakeAt(ctx context.Context, userID, id string, in SetWakeInput) (Record, error)
	Get(ctx context.Context, userID, id string) (Record, error)
	ListByOwner(ctx context.Context, userID string, page, pageSize int) ([]Record, pagekit.Info, error)

	// ListCompletedSince feeds the ranking engine: completed records whose
	// createdAt falls in [since, until], for any of the given owners
	ListCompletedSince(ctx context.Context, userIDs []string, since, until time.Time) ([]Record, error)
}
