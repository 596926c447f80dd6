package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/storefront/internal/domain"
)

// StoreRepository implements domain.StoreRepository using SQLite.
type StoreRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new SQLite-backed StoreRepository.
func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{db: db.SqlDB}
}

const storeWithOwnerQuery = `
	SELECT s.id, s.name, s.user_id, s.created_at, s.updated_at,
	       u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at
	FROM stores s
	JOIN users u ON u.id = s.user_id`

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO stores (name, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		store.Name, store.UserID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	store.ID = id
	store.CreatedAt = now
	store.UpdatedAt = now
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := scanStoreWithOwner(r.db.QueryRowContext(ctx, storeWithOwnerQuery+` WHERE s.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query store by id: %w", err)
	}
	return store, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.db.QueryContext(ctx, storeWithOwnerQuery+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		store, err := scanStoreWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, *store)
	}
	return stores, rows.Err()
}

func (r *StoreRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_id, created_at, updated_at FROM stores WHERE user_id = ? ORDER BY id`, userID)
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
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE stores SET name = ?, updated_at = ? WHERE id = ?`,
		store.Name, now, store.ID,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}

	store.UpdatedAt = now
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return expectOneRow(result)
}

func scanStoreWithOwner(row rowScanner) (*domain.Store, error) {
	s := &domain.Store{Owner: &domain.User{}}
	err := row.Scan(
		&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
		&s.Owner.ID, &s.Owner.Username, &s.Owner.Email, &s.Owner.PasswordHash, &s.Owner.CreatedAt, &s.Owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
