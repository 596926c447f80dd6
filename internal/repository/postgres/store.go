package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/storefront/internal/domain"
)

// StoreRepository implements domain.StoreRepository using PostgreSQL.
type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

const selectStoreWithOwner = `SELECT s.id, s.name, s.user_id, s.created_at, s.updated_at,
		u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at
	FROM stores s JOIN users u ON u.id = s.user_id`

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO stores (name, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		store.Name, store.UserID,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	s := &domain.Store{Owner: &domain.User{}}
	err := r.db.QueryRowContext(ctx, selectStoreWithOwner+` WHERE s.id = $1`, id).Scan(storeWithOwnerDest(s)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query store: %w", err)
	}
	return s, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.db.QueryContext(ctx, selectStoreWithOwner+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		s := domain.Store{Owner: &domain.User{}}
		if err := rows.Scan(storeWithOwnerDest(&s)...); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_id, created_at, updated_at FROM stores WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list stores by user: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	err := r.db.QueryRowContext(ctx,
		`UPDATE stores SET name = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING updated_at`,
		store.Name, store.ID,
	).Scan(&store.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return expectOneRow(result)
}

func storeWithOwnerDest(s *domain.Store) []any {
	return []any{
		&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
		&s.Owner.ID, &s.Owner.Username, &s.Owner.Email, &s.Owner.PasswordHash, &s.Owner.CreatedAt, &s.Owner.UpdatedAt,
	}
}
