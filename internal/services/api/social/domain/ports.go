package domain

import "context"

// ServicePort is the social graph surface other modules and transports consume
type ServicePort interface {
	// Follow creates the follower -> followed edge, idempotently
	Follow(ctx context.Context, followerID, followedID string) (Follow, error)

	// Unfollow removes the edge, erroring if it never existed
	Unfollow(ctx context.Context, followerID, followedID string) error

	// IsFollowing reports whether the edge exists
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)

	// FollowedIDs lists every user the follower currently follows
	FollowedIDs(ctx context.Context, followerID string) ([]string, error)
}
