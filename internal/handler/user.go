package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/msomdec/storefront/internal/service"
)

// UserHandler serves the user resource.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList handles GET /api/user.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "users", toUserDTOs(users))
}

// HandleGet handles GET /api/user/{id}.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "user", toUserWithStoresDTO(user))
}

// HandleUpdate handles PATCH /api/user. It always targets the caller.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.users.Update(r.Context(), UserFromContext(r.Context()), service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "user", toUserDTO(user))
}

// HandleDelete handles DELETE /api/user/{id}.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), UserFromContext(r.Context()), id); err != nil {
		writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
