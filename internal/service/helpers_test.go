package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/storefront/internal/credential"
	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/repository/sqlite"
	"github.com/msomdec/storefront/internal/service"
	"github.com/msomdec/storefront/internal/token"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0123456789"

type testEnv struct {
	db     *sqlite.DB
	tokens *token.Service
	auth   *service.AuthService
	users  *service.UserService
	stores *service.StoreService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	hasher, err := credential.NewHasher(credential.AlgorithmBcrypt, 4)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	tokens := token.NewService(testJWTSecret, 0)

	return &testEnv{
		db:     db,
		tokens: tokens,
		auth:   service.NewAuthService(db.Users(), hasher, tokens),
		users:  service.NewUserService(db.Users(), db.Stores(), hasher),
		stores: service.NewStoreService(db.Stores(), db.Users()),
	}
}

func (e *testEnv) register(t *testing.T, username string) (*domain.User, string) {
	t.Helper()
	user, tok, err := e.auth.Register(context.Background(), service.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Register %s: %v", username, err)
	}
	return user, tok
}
