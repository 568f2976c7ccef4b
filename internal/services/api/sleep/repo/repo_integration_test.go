//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	perr "driftlog/internal/platform/errors"
	"driftlog/internal/platform/store"
	"driftlog/internal/services/api/sleep/domain"

	"github.com/google/uuid"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const schema = `
CREATE TABLE users (
    id         uuid PRIMARY KEY,
    name       text NOT NULL UNIQUE,
    created_at timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE sleep_records (
    id               uuid PRIMARY KEY,
    user_id          uuid NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    sleep_at         timestamptz NOT NULL,
    wake_at          timestamptz,
    duration_seconds bigint,
    created_at       timestamptz NOT NULL
);
`

func openStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()
	st, err := store.Open(ctx, store.Config{
		AppName: "driftlog-sleep-repo-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return st
}

func seedUser(t *testing.T, ctx context.Context, st *store.Store, name string) string {
	t.Helper()
	id := uuid.NewString()
	if _, err := st.PG.Exec(ctx, `INSERT INTO users (id, name) VALUES ($1::uuid, $2)`, id, name); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func TestSleepRepo_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	defer func() { _ = st.Close(context.Background()) }()

	repo := NewPG().Bind(st.PG)
	owner := seedUser(t, ctx, st, "Aki")
	other := seedUser(t, ctx, st, "Bea")

	now := time.Now().UTC().Truncate(time.Second)
	rec := domain.Record{
		ID:        uuid.NewString(),
		UserID:    owner,
		SleepAt:   now.Add(-8 * time.Hour),
		CreatedAt: now.Add(-8 * time.Hour),
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// owner scoping
	if _, err := repo.Get(ctx, rec.ID, other); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("cross-owner get: code = %v, want not found", perr.CodeOf(err))
	}
	got, err := repo.Get(ctx, rec.ID, owner)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Completed() {
		t.Fatalf("open record reported completed")
	}

	// close it
	if err := repo.SetWake(ctx, rec.ID, owner, now, 8*3600); err != nil {
		t.Fatalf("SetWake: %v", err)
	}
	got, err = repo.Get(ctx, rec.ID, owner)
	if err != nil {
		t.Fatalf("Get after SetWake: %v", err)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 8*3600 {
		t.Fatalf("duration = %v", got.DurationSeconds)
	}

	// wrong owner update hits zero rows
	if err := repo.SetWake(ctx, rec.ID, other, now, 1); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("cross-owner SetWake: code = %v", perr.CodeOf(err))
	}

	// window query: completed + in-range only
	stale := domain.Record{
		ID:        uuid.NewString(),
		UserID:    owner,
		SleepAt:   now.AddDate(0, 0, -9),
		CreatedAt: now.AddDate(0, 0, -9),
	}
	if err := repo.Insert(ctx, stale); err != nil {
		t.Fatalf("Insert stale: %v", err)
	}
	if err := repo.SetWake(ctx, stale.ID, owner, stale.SleepAt.Add(7*time.Hour), 7*3600); err != nil {
		t.Fatalf("SetWake stale: %v", err)
	}

	// a half-written row (wake set, duration missing) never reaches the feed
	mangled := uuid.NewString()
	if _, err := st.PG.Exec(ctx, `
		INSERT INTO sleep_records (id, user_id, sleep_at, wake_at, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5)
	`, mangled, other, now.Add(-2*time.Hour), now.Add(-time.Hour), now.Add(-2*time.Hour)); err != nil {
		t.Fatalf("insert mangled row: %v", err)
	}

	recs, err := repo.ListCompletedSince(ctx, []string{owner, other}, now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatalf("ListCompletedSince: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != rec.ID {
		t.Fatalf("window results = %+v, want only the fresh record", recs)
	}

	// owner listing
	all, err := repo.ListByOwner(ctx, owner, 10, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(all) != 2 || all[0].ID != rec.ID {
		t.Fatalf("list = %+v, want newest created first", all)
	}
	n, err := repo.CountByOwner(ctx, owner)
	if err != nil || n != 2 {
		t.Fatalf("CountByOwner = %d, %v", n, err)
	}
}
