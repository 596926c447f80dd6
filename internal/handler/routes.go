package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, users *service.UserService, stores *service.StoreService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)
	storeHandler := NewStoreHandler(stores)

	protect := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /{$}", HandleHome)
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.Handle("GET /api/auth/me", protect(authHandler.HandleMe))

	mux.HandleFunc("GET /api/user", userHandler.HandleList)
	mux.Handle("PATCH /api/user", protect(userHandler.HandleUpdate))
	mux.HandleFunc("GET /api/user/{id}", userHandler.HandleGet)
	mux.Handle("DELETE /api/user/{id}", protect(userHandler.HandleDelete))

	mux.HandleFunc("GET /api/store", storeHandler.HandleList)
	mux.Handle("POST /api/store", protect(storeHandler.HandleCreate))
	mux.HandleFunc("GET /api/store/{id}", storeHandler.HandleGet)
	mux.Handle("PATCH /api/store/{id}", protect(storeHandler.HandleUpdate))
	mux.Handle("DELETE /api/store/{id}", protect(storeHandler.HandleDelete))

	mux.HandleFunc("/", HandleNotFound)
}
