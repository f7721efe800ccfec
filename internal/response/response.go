package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/habitflow/habitflow/internal/validation"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

// ValidationError writes a 400 with field-level detail when available.
func ValidationError(w http.ResponseWriter, err error) {
	if fieldErr, ok := err.(*validation.FieldError); ok {
		JSON(w, http.StatusBadRequest, errorBody{Error: fieldErr.Message, Field: fieldErr.Field})
		return
	}
	Error(w, http.StatusBadRequest, err.Error())
}
