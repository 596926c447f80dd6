package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/repository/sqlite"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpw",
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "one", Email: "dup@example.com", PasswordHash: "h1"}); err != nil {
		t.Fatalf("Create user1: %v", err)
	}

	err := repo.Create(ctx, &domain.User{Username: "two", Email: "dup@example.com", PasswordHash: "h2"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "getter", Email: "get@example.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != "getter" || got.Email != "get@example.com" || got.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "byemail", Email: "by@example.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "by@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected ID %d, got %d", user.ID, got.ID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}

	for _, name := range []string{"first", "second"} {
		if err := repo.Create(ctx, &domain.User{Username: name, Email: name + "@example.com", PasswordHash: "h"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	users, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].Username != "first" || users[1].Username != "second" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "before", Email: "before@example.com", PasswordHash: "old"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user.Username = "after"
	user.Email = "after@example.com"
	user.PasswordHash = "new"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != "after" || got.Email != "after@example.com" || got.PasswordHash != "new" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Username: "a", Email: "a@example.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b := &domain.User{Username: "b", Email: "b@example.com", PasswordHash: "h"}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	b.Email = "a@example.com"
	if err := repo.Update(ctx, b); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	err := repo.Update(context.Background(), &domain.User{ID: 42, Username: "x", Email: "x@example.com"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Delete_CascadesStores(t *testing.T) {
	db := newTestDB(t)
	users := sqlite.NewUserRepository(db)
	stores := sqlite.NewStoreRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "owner", Email: "owner@example.com", PasswordHash: "h"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	store := &domain.Store{Name: "Owner's Big Store", UserID: user.ID}
	if err := stores.Create(ctx, store); err != nil {
		t.Fatalf("Create store: %v", err)
	}

	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := users.GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := stores.GetByID(ctx, store.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected store removed with owner, got %v", err)
	}

	if err := users.Delete(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
