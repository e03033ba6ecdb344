package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/validation"
	log "github.com/sirupsen/logrus"
)

// ErrorResponse is the structured error payload every API endpoint returns on
// failure. Callers rely on this shape instead of bare error strings.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// WriteError writes a structured error payload.
func WriteError(w http.ResponseWriter, status int, code, message, hint string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    code,
		Hint:    hint,
	})
}

// WriteDomainError maps a service-layer error onto the API error contract:
// validation failures become 400 with the failing field named, unreachable
// storage becomes 503 with a retry hint, everything else is a 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", vErr.Error(), "")
		return
	}
	if database.IsUnavailable(err) {
		WriteError(w, http.StatusServiceUnavailable, "storage_unavailable", "storage is unreachable", "retry shortly")
		return
	}
	WriteError(w, http.StatusInternalServerError, "internal", err.Error(), "")
}
