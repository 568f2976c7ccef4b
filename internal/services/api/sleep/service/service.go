// Package service implements the sleep record lifecycle
package service

import (
	"context"
	"time"

	"driftlog/internal/modkit/pagekit"
	"driftlog/internal/modkit/repokit"
	"driftlog/internal/platform/clock"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/services/api/sleep/domain"
	srepo "driftlog/internal/services/api/sleep/repo"

	"github.com/google/uuid"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	DB    repokit.TxRunner
	Repo  repokit.Binder[srepo.Storage]
	Clock clock.Clock
}

// Compile-time assertion: Service implements domain.ServicePort
var _ domain.ServicePort = (*Service)(nil)

// New constructs a sleep service
func New(db repokit.TxRunner, binder repokit.Binder[srepo.Storage], clk clock.Clock) *Service {
	if db == nil {
		panic("sleep.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("sleep.Service requires a non-nil repo Binder")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{DB: db, Repo: binder, Clock: clk}
}

func parseStamp(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, perr.Validationf(field, "%s is required", field)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, perr.Validationf(field, "%s must be an RFC3339 timestamp", field)
	}
	return t.UTC(), nil
}

// Create opens a new interval for the user
func (s *Service) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Record, error) {
	sleepAt, err := parseStamp("sleep_at", in.SleepAt)
	if err != nil {
		return domain.Record{}, err
	}
	return s.insert(ctx, userID, sleepAt, s.Clock.Now())
}

// CreateBackdated is the trusted backfill path: createdAt is caller-supplied.
// Only the seed tool uses it
func (s *Service) CreateBackdated(
	ctx context.Context,
	userID string,
	sleepAt, createdAt time.Time,
) (domain.Record, error) {
	return s.insert(ctx, userID, sleepAt.UTC(), createdAt.UTC())
}

func (s *Service) insert(ctx context.Context, userID string, sleepAt, createdAt time.Time) (domain.Record, error) {
	rec := domain.Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		SleepAt:   sleepAt,
		CreatedAt: createdAt,
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Repo.Bind(q).Insert(ctx, rec)
	})
	if err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// SetWakeAt closes (or re-closes) the interval. The read, the duration
// computation, and the write share one transaction so the stored duration
// always derives from the stored sleepAt
func (s *Service) SetWakeAt(
	ctx context.Context,
	userID, id string,
	in domain.SetWakeInput,
) (domain.Record, error) {
	wakeAt, err := parseStamp("wake_at", in.WakeAt)
	if err != nil {
		return domain.Record{}, err
	}

	var out domain.Record
	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Repo.Bind(q)

		rec, err := r.Get(ctx, id, userID)
		if err != nil {
			return err
		}

		dur := domain.ComputeDuration(rec.SleepAt, wakeAt)
		if err := r.SetWake(ctx, id, userID, wakeAt, dur); err != nil {
			return err
		}

		rec.WakeAt = &wakeAt
		rec.DurationSeconds = &dur
		out = rec
		return nil
	})
	return out, err
}

// Get returns the record if the user owns it, NotFound otherwise
func (s *Service) Get(ctx context.Context, userID, id string) (domain.Record, error) {
	return s.Repo.Bind(s.DB).Get(ctx, id, userID)
}

// ListByOwner returns the user's records newest first with page metadata
func (s *Service) ListByOwner(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]domain.Record, pagekit.Info, error) {
	if page < 1 {
		return nil, pagekit.Info{}, perr.InvalidArgf("page must be >= 1, got %d", page)
	}
	if pageSize <= 0 {
		return nil, pagekit.Info{}, perr.InvalidArgf("page_size must be > 0, got %d", pageSize)
	}

	r := s.Repo.Bind(s.DB)

	total, err := r.CountByOwner(ctx, userID)
	if err != nil {
		return nil, pagekit.Info{}, err
	}
	recs, err := r.ListByOwner(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, pagekit.Info{}, err
	}

	info := pagekit.Info{
		CurrentPage: page,
		TotalPages:  pagekit.Pages(total, pageSize),
		TotalItems:  total,
	}
	return recs, info, nil
}

// ListCompletedSince exposes the ranking engine's read
func (s *Service) ListCompletedSince(
	ctx context.Context,
	userIDs []string,
	since, until time.Time,
) ([]domain.Record, error) {
	return s.Repo.Bind(s.DB).ListCompletedSince(ctx, userIDs, since, until)
}
