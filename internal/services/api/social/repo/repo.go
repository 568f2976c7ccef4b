// Package repo provides the Postgres storage for the follow graph
package repo

import (
	"context"

	"driftlog/internal/modkit/repokit"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/platform/store"
	"driftlog/internal/services/api/social/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the follow graph repository
type Storage interface {
	Upsert(ctx context.Context, followerID, followedID string) error
	Get(ctx context.Context, followerID, followedID string) (domain.Follow, error)
	Delete(ctx context.Context, followerID, followedID string) (bool, error)
	Exists(ctx context.Context, followerID, followedID string) (bool, error)
	FollowedIDs(ctx context.Context, followerID string) ([]string, error)
}

// Compile-time assertion: pg implements Storage
var _ Storage = (*pg)(nil)

func scanFollow(r store.Row) (domain.Follow, error) {
	var f domain.Follow
	err := r.Scan(&f.FollowerID, &f.FollowedID, &f.CreatedAt)
	return f, err
}

const followCols = `follower_id::text, followed_id::text, created_at`

// Upsert inserts the edge, silently keeping an existing one
func (s *pg) Upsert(ctx context.Context, followerID, followedID string) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`, followerID, followedID)
	if err != nil {
		return perr.FromPostgres(err, "follow upsert")
	}
	return nil
}

// Get returns the edge, NotFound when it does not exist
func (s *pg) Get(ctx context.Context, followerID, followedID string) (domain.Follow, error) {
	f, err := store.One(ctx, s.q, scanFollow, `
		SELECT `+followCols+`
		FROM follows
		WHERE follower_id = $1::uuid AND followed_id = $2::uuid
	`, followerID, followedID)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return domain.Follow{}, perr.NotFoundf("follow edge not found")
		}
		return domain.Follow{}, perr.FromPostgres(err, "follow get")
	}
	return f, nil
}

// Delete removes the edge and reports whether one was there
func (s *pg) Delete(ctx context.Context, followerID, followedID string) (bool, error) {
	tag, err := s.q.Exec(ctx, `
		DELETE FROM follows
		WHERE follower_id = $1::uuid AND followed_id = $2::uuid
	`, followerID, followedID)
	if err != nil {
		return false, perr.FromPostgres(err, "follow delete")
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether the edge is present
func (s *pg) Exists(ctx context.Context, followerID, followedID string) (bool, error) {
	n, err := store.Scalar[int](ctx, s.q, `
		SELECT COUNT(*)
		FROM follows
		WHERE follower_id = $1::uuid AND followed_id = $2::uuid
	`, followerID, followedID)
	if err != nil {
		return false, perr.FromPostgres(err, "follow exists")
	}
	return n > 0, nil
}

// FollowedIDs lists every user the follower currently follows
func (s *pg) FollowedIDs(ctx context.Context, followerID string) ([]string, error) {
	scanID := func(r store.Row) (string, error) {
		var id string
		err := r.Scan(&id)
		return id, err
	}
	ids, err := store.Many(ctx, s.q, scanID, `
		SELECT followed_id::text
		FROM follows
		WHERE follower_id = $1::uuid
		ORDER BY created_at ASC, followed_id ASC
	`, followerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "follow list")
	}
	return ids, nil
}
