// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerdash/ledgerdash/internal/handler/dto"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

// Handler wraps application dependencies for HTTP handlers.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is a simple info endpoint for testing.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Hello from Ledgerdash!",
		"version": "0.1.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error in production, for now just ignore
		_ = err
	}
}

// writeResult translates a mutation pipeline outcome to the wire.
// Redirects become 303 See Other so the framework, not the pipeline,
// performs the control transfer.
func writeResult(w http.ResponseWriter, r *http.Request, res service.Result) {
	switch res.Kind {
	case service.KindRedirect:
		http.Redirect(w, r, res.RedirectPath, http.StatusSeeOther)
	case service.KindValidationFailed:
		writeJSON(w, http.StatusUnprocessableEntity, dto.MutationResponse{
			Errors:  res.Errors,
			Message: res.Message,
		})
	case service.KindPersistFailed:
		writeJSON(w, http.StatusInternalServerError, dto.MutationResponse{
			Message: res.Message,
		})
	case service.KindDeleted:
		writeJSON(w, http.StatusOK, dto.MessageResponse{
			Message: res.Message,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
	}
}

// parseSubmission reads the submitted form body.
func parseSubmission(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid form submission",
			Code:  "INVALID_FORM",
		})
		return false
	}
	return true
}
