package handler

import (
	"log/slog"
	"net/http"

	"github.com/ledgerdash/ledgerdash/internal/service"
)

// UserHandler handles HTTP requests for user signup.
type UserHandler struct {
	svc    *service.UserService
	auth   *AuthHandler
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler. The AuthHandler is borrowed
// for its cookie settings so signup and login issue identical cookies.
func NewUserHandler(svc *service.UserService, auth *AuthHandler, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		auth:   auth,
		logger: logger,
	}
}

// Signup handles POST /signup.
//
// A successful signup also logs the new user in; if that secondary step
// fails the redirect still happens, just without a session cookie.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	res, token := h.svc.Signup(r.Context(), r.PostForm)
	if token != "" {
		h.auth.setSessionCookie(w, token)
	}
	writeResult(w, r, res)
}
