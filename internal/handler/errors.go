package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"feedapi/internal/apperr"
)

// ErrorResponse is the uniform error shape for all endpoints.
type ErrorResponse struct {
	Message    string   `json:"message"`
	StatusCode int      `json:"statusCode"`
	Data       []string `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{Message: message, StatusCode: statusCode})
}

// writeAppError normalizes any error to the taxonomy and renders it.
// Unclassified errors become 500 and are logged server-side only.
func writeAppError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.Internal {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, appErr.Status(), ErrorResponse{
		Message:    appErr.Message,
		StatusCode: appErr.Status(),
		Data:       appErr.Details,
	})
}

// writeValidationError renders a 422 carrying one entry per failed field.
func writeValidationError(w http.ResponseWriter, message string, err error) {
	details := []string{}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrs {
			details = append(details, fmt.Sprintf("%s failed on the %s rule", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Data:       details,
	})
}
