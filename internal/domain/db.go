package domain

import "context"

// Database defines lifecycle operations for the underlying database along
// with access to its repositories. Each implementation (SQLite, Postgres)
// owns its own migration files and strategy, so the whole backend is
// swappable from configuration.
type Database interface {
	Users() UserRepository
	Stores() StoreRepository
	Migrate(ctx context.Context) error
	Close() error
}
