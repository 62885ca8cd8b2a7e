package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ledgerdash/ledgerdash/internal/cache"
	"github.com/ledgerdash/ledgerdash/internal/form"
	"github.com/ledgerdash/ledgerdash/internal/handler/dto"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

// loginLimiter throttles credential attempts per email and client IP.
type loginLimiter interface {
	CheckLoginRateLimit(ctx context.Context, email, ip string, ratePerSecond, burst int) (*cache.RateLimitResult, error)
}

// AuthConfig carries the cookie and throttling settings for the
// authentication endpoints.
type AuthConfig struct {
	CookieName       string
	CookieSecure     bool
	SessionTTL       time.Duration
	RateLimitEnabled bool
	RateLimitRPS     int
	RateLimitBurst   int
}

// AuthHandler handles the credentials login and logout endpoints.
type AuthHandler struct {
	svc     *service.AuthService
	limiter loginLimiter
	cfg     AuthConfig
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, limiter loginLimiter, cfg AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		limiter: limiter,
		cfg:     cfg,
		logger:  logger,
	}
}

// Login handles POST /login.
//
// A malformed submission or a credentials mismatch both answer 401 with
// the same sentence, so the response never reveals whether the account
// exists. Errors outside the authentication domain answer 500.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	f, errs := form.ParseLogin(r.PostForm)
	if errs != nil {
		writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{
			Message: service.MsgInvalidCredentials,
		})
		return
	}

	if h.cfg.RateLimitEnabled && h.limiter != nil {
		result, err := h.limiter.CheckLoginRateLimit(r.Context(), f.Email, clientIP(r), h.cfg.RateLimitRPS, h.cfg.RateLimitBurst)
		if err == nil && !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
			writeJSON(w, http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please try again later.",
				Code:  "RATE_LIMITED",
			})
			return
		}
	}

	token, err := h.svc.Authenticate(r.Context(), f.Email, f.Password)
	if err != nil {
		if msg, ok := service.LoginErrorMessage(err); ok {
			writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{
				Message: msg,
			})
			return
		}
		// Not an authentication failure: infrastructure broke mid-login.
		h.logger.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, service.PathDashboard, http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
		if err := h.svc.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("session delete failed", "error", err)
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// setSessionCookie issues the HTTP-only session cookie.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clientIP extracts the caller's address; the RealIP middleware has
// already resolved any proxy headers into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
