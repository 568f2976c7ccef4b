// Package service provides the ident service implementation
package service

import (
	"context"

	"driftlog/internal/modkit/repokit"
	perr "driftlog/internal/platform/errors"
	"driftlog/internal/services/ident/domain"

	"github.com/google/uuid"
)

// Svc implements the ident reader and upserter ports
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
}

// Compile-time assertion: Svc implements domain.Ports
var _ domain.Ports = (*Svc)(nil)

// New constructs the ident service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder}
}

// ByID returns the user for id or NotFound
func (s *Svc) ByID(ctx context.Context, id string) (domain.User, error) {
	return s.binder.Bind(s.db).ByID(ctx, id)
}

// NamesByIDs returns display names keyed by user id
func (s *Svc) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return s.binder.Bind(s.db).NamesByIDs(ctx, ids)
}

// EnsureUser inserts a user by normalized name if missing and returns the
// row. Safe to race: the upsert keeps whichever row landed first and the
// read-back returns it, so no error path exists inside the transaction
func (s *Svc) EnsureUser(ctx context.Context, name string) (domain.User, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.User{}, perr.Validationf("name", "name must not be blank")
	}

	var out domain.User
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		if err := r.Upsert(ctx, domain.User{ID: uuid.NewString(), Name: name}); err != nil {
			return err
		}
		var err error
		out, err = r.ByName(ctx, name)
		return err
	})
	return out, err
}
