package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/validation"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

var errInvalidBody = errors.New("invalid request body")

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeSuccess sends {"status":"success", key: value}.
func writeSuccess(w http.ResponseWriter, status int, key string, value any) {
	writeJSON(w, status, map[string]any{
		"status": statusSuccess,
		key:      value,
	})
}

// writeFail sends a client error envelope.
func writeFail(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, map[string]any{
		"status":  statusFail,
		"message": message,
	})
}

// writeFailure translates err into the matching error envelope.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeFail(w, http.StatusBadRequest, []string(verrs))
	case errors.Is(err, errInvalidBody):
		writeFail(w, http.StatusBadRequest, errInvalidBody.Error())
	case errors.Is(err, domain.ErrMissingToken):
		writeFail(w, http.StatusUnauthorized, domain.ErrMissingToken.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		writeFail(w, http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeFail(w, http.StatusForbidden, domain.ErrForbidden.Error())
	default:
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  statusError,
			"message": err.Error(),
		})
	}
}

// readJSON decodes the request body into dst. An empty body leaves dst
// untouched.
func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}
