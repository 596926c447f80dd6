package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/storefront/internal/credential"
	"github.com/msomdec/storefront/internal/handler"
	"github.com/msomdec/storefront/internal/repository/sqlite"
	"github.com/msomdec/storefront/internal/service"
	"github.com/msomdec/storefront/internal/token"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

type testServices struct {
	auth   *service.AuthService
	users  *service.UserService
	stores *service.StoreService
	tokens *token.Service
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hasher, err := credential.NewHasher(credential.AlgorithmBcrypt, 4)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	tokens := token.NewService(testJWTSecret, 0)

	return testServices{
		auth:   service.NewAuthService(db.Users(), hasher, tokens),
		users:  service.NewUserService(db.Users(), db.Stores(), hasher),
		stores: service.NewStoreService(db.Stores(), db.Users()),
		tokens: tokens,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, testServices) {
	t.Helper()
	svcs := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svcs.auth, svcs.users, svcs.stores)

	srv := httptest.NewServer(handler.Chain(mux))
	t.Cleanup(srv.Close)
	return srv, svcs
}

type envelope struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Users   json.RawMessage `json:"users"`
	Store   json.RawMessage `json:"store"`
	Stores  json.RawMessage `json:"stores"`
}

// do sends a JSON request and decodes the envelope, if any.
func do(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, env
}

func messageString(t *testing.T, env envelope) string {
	t.Helper()
	var msg string
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		t.Fatalf("message is not a string: %s", env.Message)
	}
	return msg
}

func messageList(t *testing.T, env envelope) []string {
	t.Helper()
	var msgs []string
	if err := json.Unmarshal(env.Message, &msgs); err != nil {
		t.Fatalf("message is not a list: %s", env.Message)
	}
	return msgs
}

func register(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()
	status, env := do(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password1",
	})
	if status != http.StatusCreated || env.Token == "" {
		t.Fatalf("register %s: status %d, env %+v", username, status, env)
	}
	return env.Token
}
