package domain

// FollowInput is the payload for creating a follow edge
type FollowInput struct {
	FollowedID string `json:"followed_id" validate:"required,uuid"`
}

// FollowingResp reports whether a follow edge exists
type FollowingResp struct {
	Following bool `json:"following"`
}
