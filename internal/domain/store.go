package domain

import (
	"context"
	"time"
)

// Store is a named shop owned by exactly one user.
type Store struct {
	ID        int64
	Name      string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is populated by GetByID and List.
	Owner *User
}

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id int64) (*Store, error)
	List(ctx context.Context) ([]Store, error)
	ListByUser(ctx context.Context, userID int64) ([]Store, error)
	Update(ctx context.Context, store *Store) error
	Delete(ctx context.Context, id int64) error
}
