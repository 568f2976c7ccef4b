// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"

	"driftlog/internal/modkit/repokit"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/platform/store"
	"driftlog/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

func scanUser(r store.Row) (domain.User, error) {
	var u domain.User
	err := r.Scan(&u.ID, &u.Name, &u.CreatedAt)
	return u, err
}

// ByID returns the user row or NotFound
func (r *queries) ByID(ctx context.Context, id string) (domain.User, error) {
	u, err := store.One(ctx, r.q, scanUser, `
		SELECT id::text, name, created_at
		FROM users
		WHERE id = $1::uuid
	`, id)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return domain.User{}, perr.NotFoundf("user %s not found", id)
		}
		return domain.User{}, perr.FromPostgres(err, "ident by id")
	}
	return u, nil
}

// ByName returns the user row with the given display name or NotFound
func (r *queries) ByName(ctx context.Context, name string) (domain.User, error) {
	u, err := store.One(ctx, r.q, scanUser, `
		SELECT id::text, name, created_at
		FROM users
		WHERE name = $1
	`, name)
	if err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeNotFound {
			return domain.User{}, perr.NotFoundf("user %q not found", name)
		}
		return domain.User{}, perr.FromPostgres(err, "ident by name")
	}
	return u, nil
}

// NamesByIDs returns display names keyed by id; unknown ids are absent
func (r *queries) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.q.Query(ctx, `
		SELECT id::text, name
		FROM users
		WHERE id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return nil, perr.FromPostgres(err, "ident names by ids")
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, perr.FromPostgres(err, "ident names by ids scan")
		}
		out[id] = name
	}
	return out, rows.Err()
}

// Upsert writes a user row, silently keeping an existing row with the same
// name; created_at is assigned by the database
func (r *queries) Upsert(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, name)
		VALUES ($1::uuid, $2)
		ON CONFLICT (name) DO NOTHING
	`, u.ID, u.Name)
	if err != nil {
		return perr.FromPostgres(err, "ident upsert")
	}
	return nil
}
