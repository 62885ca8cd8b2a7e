// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// MutationResponse is the wire shape of a mutation outcome that did not
// redirect: validation failures (with per-field errors), persistence
// failures, and delete confirmations (message only).
type MutationResponse struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}

// MessageResponse carries a single user-facing sentence.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
