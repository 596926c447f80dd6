// Package postgres is the PostgreSQL implementation of domain.Database. It
// uses the pgx stdlib driver and applies its schema with goose.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/repository/postgres/migrations"
)

const uniqueViolation = "23505"

// DB wraps a PostgreSQL connection pool and the repositories backed by it.
type DB struct {
	SqlDB  *sql.DB
	users  *UserRepository
	stores *StoreRepository
}

// New opens a connection pool for dsn and verifies it is reachable.
func New(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return Wrap(db), nil
}

// Wrap builds a DB around an existing connection.
func Wrap(db *sql.DB) *DB {
	return &DB{
		SqlDB:  db,
		users:  &UserRepository{db: db},
		stores: &StoreRepository{db: db},
	}
}

func (d *DB) Users() domain.UserRepository {
	return d.users
}

func (d *DB) Stores() domain.StoreRepository {
	return d.stores
}

// gooseUp is swapped out in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate applies the embedded goose migrations.
func (d *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUp(ctx, d.SqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	return d.SqlDB.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
