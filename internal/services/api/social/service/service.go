// Package service implements the follow graph operations
package service

import (
	"context"

	"driftlog/internal/modkit/repokit"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/services/api/social/domain"
	srepo "driftlog/internal/services/api/social/repo"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[srepo.Storage]
}

// Compile-time assertion: Service implements domain.ServicePort
var _ domain.ServicePort = (*Service)(nil)

// New constructs a social service
func New(db repokit.TxRunner, binder repokit.Binder[srepo.Storage]) *Service {
	if db == nil {
		panic("social.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("social.Service requires a non-nil repo Binder")
	}
	return &Service{DB: db, Repo: binder}
}

// Follow creates the follower -> followed edge. Re-following is a no-op
// that returns the existing edge
func (s *Service) Follow(ctx context.Context, followerID, followedID string) (domain.Follow, error) {
	if followedID == "" {
		return domain.Follow{}, perr.Validationf("followed_id", "followed_id is required")
	}
	if followerID == followedID {
		return domain.Follow{}, perr.Validationf("followed_id", "you cannot follow yourself")
	}

	var edge domain.Follow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		repo := s.Repo.Bind(q)
		if err := repo.Upsert(ctx, followerID, followedID); err != nil {
			if perr.IsForeignKeyViolation(err) {
				return perr.NotFoundf("user %s not found", followedID)
			}
			return err
		}
		var err error
		edge, err = repo.Get(ctx, followerID, followedID)
		return err
	})
	if err != nil {
		return domain.Follow{}, err
	}
	return edge, nil
}

// Unfollow removes the edge. Removing an edge that never existed is NotFound
func (s *Service) Unfollow(ctx context.Context, followerID, followedID string) error {
	if followedID == "" {
		return perr.Validationf("followed_id", "followed_id is required")
	}
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		gone, err := s.Repo.Bind(q).Delete(ctx, followerID, followedID)
		if err != nil {
			return err
		}
		if !gone {
			return perr.NotFoundf("you do not follow user %s", followedID)
		}
		return nil
	})
}

// IsFollowing reports whether the follower currently follows the user
func (s *Service) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	var ok bool
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		ok, err = s.Repo.Bind(q).Exists(ctx, followerID, followedID)
		return err
	})
	return ok, err
}

// FollowedIDs lists every user the follower currently follows
func (s *Service) FollowedIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		ids, err = s.Repo.Bind(q).FollowedIDs(ctx, followerID)
		return err
	})
	return ids, err
}
