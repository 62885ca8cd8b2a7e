package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ledgerdash/ledgerdash/internal/auth"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// SessionReader resolves an opaque session token to a stored session.
type SessionReader interface {
	GetSession(ctx context.Context, token string) (*model.Session, error)
}

// UserGetter loads the user behind an authenticated session.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Logger     *slog.Logger
	Repository UserGetter
	Cache      SessionReader
	CookieName string
}

// Session returns a middleware that authenticates requests by session
// cookie. It resolves the cookie token to a stored session, loads the
// user, and injects it into the request context.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				writeSessionError(w)
				return
			}

			token := cookie.Value
			if !auth.ValidateTokenFormat(token) {
				cfg.Logger.Warn("session rejected",
					slog.String("reason", "invalid_format"),
					slog.String("ip", r.RemoteAddr),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			sess, err := cfg.Cache.GetSession(r.Context(), token)
			if err != nil {
				cfg.Logger.Error("session store error",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}
			if sess == nil {
				writeSessionError(w)
				return
			}

			user, err := cfg.Repository.GetUserByID(r.Context(), sess.UserID)
			if err != nil {
				// Session for a user that no longer exists; treat as expired.
				cfg.Logger.Warn("session rejected",
					slog.String("reason", "unknown_user"),
					slog.String("user_id", sess.UserID),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeSessionError(w)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns a middleware that rejects non-admin users.
// Must run after Session.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.UserFromContext(r.Context())
			if user == nil || !user.HasRole(model.RoleAdmin) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"code":"FORBIDDEN","message":"Admin role required"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeSessionError writes a 401 Unauthorized response.
// Uses the same message for all session failures to prevent probing.
func writeSessionError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`))
}
