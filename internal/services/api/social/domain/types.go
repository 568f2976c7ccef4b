// Package domain holds the social graph types and ports
package domain

import "time"

// Follow is a directed edge in the follow graph
type Follow struct {
	FollowerID string    `json:"follower_id"`
	FollowedID string    `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
