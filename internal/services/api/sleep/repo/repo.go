// Package repo provides the Postgres storage for sleep records
package repo

import (
	"context"
	"time"

	"driftlog/internal/modkit/repokit"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/platform/store"
	"driftlog/internal/services/api/sleep/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the sleep record repository
type Storage interface {
	Insert(ctx context.Context, rec domain.Record) error
	Get(ctx context.Context, id, userID string) (domain.Record, error)
	SetWake(ctx context.Context, id, userID string, wakeAt time.Time, durationSeconds int64) error
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]domain.Record, error)
	CountByOwner(ctx context.Context, userID string) (int, error)
	ListCompletedSince(ctx context.Context, userIDs []string, since, until time.Time) ([]domain.Record, error)
}

// Compile-time assertion: pg implements Storage
var _ Storage = (*pg)(nil)

func scanRecord(r store.Row) (domain.Record, error) {
	var rec domain.Record
	err := r.Scan(&rec.ID, &rec.UserID, &rec.SleepAt, &rec.WakeAt, &rec.DurationSeconds, &rec.CreatedAt)
	return rec, err
}

const recordCols = `id::text, user_id::text, sleep_at, wake_at, duration_seconds, created_at`

// Insert writes a record, created_at included (the trusted backfill path
// passes historical values)
func (s *pg) Insert(ctx context.Context, rec domain.Record) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO sleep_records (id, user_id, sleep_at, wake_at, duration_seconds, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
	`, rec.ID, rec.UserID, rec.SleepAt, rec.WakeAt, rec.DurationSeconds, rec.CreatedAt)
	if err != nil {
		return perr.FromPostgres(err, "sleep insert")
	}
	return nil
}

// Get returns the record scoped to its owner, NotFound otherwise
func (s *pg) Get(ctx context.Context, id, userID string) (domain.Record, error) {
	rec, err := store.One(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM sleep_records
		WHERE id = $1::uuid AND user_id = $2::uuid
	`, id, userID)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return domain.Record{}, perr.NotFoundf("sleep record %s not found", id)
		}
		return domain.Record{}, perr.FromPostgres(err, "sleep get")
	}
	return rec, nil
}

// SetWake closes the interval; scoping to id+owner keeps the write race-free
func (s *pg) SetWake(ctx context.Context, id, userID string, wakeAt time.Time, durationSeconds int64) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE sleep_records
		SET wake_at = $3, duration_seconds = $4
		WHERE id = $1::uuid AND user_id = $2::uuid
	`, id, userID, wakeAt, durationSeconds)
	if err != nil {
		return perr.FromPostgres(err, "sleep set wake")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("sleep record %s not found", id)
	}
	return nil
}

// ListByOwner returns the owner's records newest createdAt first
func (s *pg) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]domain.Record, error) {
	recs, err := store.Many(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM sleep_records
		WHERE user_id = $1::uuid
		ORDER BY created_at DESC, id ASC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, perr.FromPostgres(err, "sleep list by owner")
	}
	return recs, nil
}

// CountByOwner returns how many records the owner has
func (s *pg) CountByOwner(ctx context.Context, userID string) (int, error) {
	n, err := store.Scalar[int](ctx, s.q, `
		SELECT COUNT(*) FROM sleep_records WHERE user_id = $1::uuid
	`, userID)
	if err != nil {
		return 0, perr.FromPostgres(err, "sleep count by owner")
	}
	return n, nil
}

// ListCompletedSince returns completed records created in [since, until]
// for any of the given owners
func (s *pg) ListCompletedSince(
	ctx context.Context,
	userIDs []string,
	since, until time.Time,
) ([]domain.Record, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	recs, err := store.Many(ctx, s.q, scanRecord, `
		SELECT `+recordCols+`
		FROM sleep_records
		WHERE user_id = ANY($1::uuid[])
		  AND wake_at IS NOT NULL
		  AND duration_seconds IS NOT NULL
		  AND created_at >= $2
		  AND created_at <= $3
	`, userIDs, since, until)
	if err != nil {
		return nil, perr.FromPostgres(err, "sleep list completed")
	}
	return recs, nil
}
