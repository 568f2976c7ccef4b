package domain

import "context"

// ReaderPort abstracts the lookups other modules need from ident
type ReaderPort interface {
	// ByID returns the user or NotFound
	ByID(ctx context.Context, id string) (User, error)

	// NamesByIDs returns display names keyed by user id;
	// unknown ids are simply absent from the map
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// UpserterPort abstracts the writes the seed tool needs
type UpserterPort interface {
	// EnsureUser inserts a user by name if missing and returns the row either way
	EnsureUser(ctx context.Context, name string) (User, error)
}

// Repo abstracts the ident storage operations
type Repo interface {
	ByID(ctx context.Context, id string) (User, error)
	ByName(ctx context.Context, name string) (User, error)
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)

	// Upsert inserts the row, keeping an existing one with the same name
	Upsert(ctx context.Context, u User) error
}

// Ports is a convenience interface for ReaderPort and UpserterPort
type Ports interface {
	ReaderPort
	UpserterPort
}
