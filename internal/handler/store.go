package handler

import (
	"net/http"

	"github.com/msomdec/storefront/internal/service"
)

// StoreHandler serves the store resource.
type StoreHandler struct {
	stores *service.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(stores *service.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

type storeRequest struct {
	Name string `json:"name"`
}

// HandleList handles GET /api/store.
func (h *StoreHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	stores, err := h.stores.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "stores", toStoreDTOs(stores))
}

// HandleGet handles GET /api/store/{id}.
func (h *StoreHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	store, err := h.stores.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "store", toStoreDTO(store))
}

// HandleCreate handles POST /api/store.
func (h *StoreHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := readJSON(r, &req); err != nil {
		writeFailure(w, r, err)
		return
	}

	store, err := h.stores.Create(r.Context(), UserFromContext(r.Context()), req.Name)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "store", toStoreDTO(store))
}

// HandleUpdate handles PATCH /api/store/{id}.
func (h *StoreHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	var req storeRequest
	if err := readJSON(r, &req); err != nil {
		writeFailure(w, r, err)
		return
	}

	store, err := h.stores.Update(r.Context(), UserFromContext(r.Context()), id, req.Name)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "store", toStoreDTO(store))
}

// HandleDelete handles DELETE /api/store/{id}.
func (h *StoreHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if err := h.stores.Delete(r.Context(), UserFromContext(r.Context()), id); err != nil {
		writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
