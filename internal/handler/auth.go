package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister creates an account and returns a token for it.
// POST /api/auth/register
// Request:  {"username":"...","email":"...","password":"..."}
// Response: {"status":"success","token":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeFailure(w, r, err)
		return
	}

	_, token, err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "token", token)
}

// HandleLogin exchanges credentials for a token.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"status":"success","token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeFailure(w, r, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "token", token)
}

// HandleMe returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "user", toUserDTO(UserFromContext(r.Context())))
}
