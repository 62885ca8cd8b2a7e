package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ledgerdash/ledgerdash/internal/auth"
	"github.com/ledgerdash/ledgerdash/internal/metrics"
	"github.com/ledgerdash/ledgerdash/internal/model"
	"github.com/ledgerdash/ledgerdash/internal/repository"
)

// User-facing authentication failure copy.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgAuthWentWrong      = "Something went wrong."
)

// userReader looks up users for credential verification.
type userReader interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// sessionStore persists browser sessions.
type sessionStore interface {
	SetSession(ctx context.Context, token string, sess *model.Session, ttl time.Duration) error
	DeleteSession(ctx context.Context, token string) error
}

// AuthService exchanges credentials for a session.
type AuthService struct {
	users      userReader
	sessions   sessionStore
	sessionTTL time.Duration
	logger     *slog.Logger
	metrics    metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users userReader, sessions sessionStore, sessionTTL time.Duration, logger *slog.Logger, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
		metrics:    recorder,
	}
}

// Authenticate verifies an email/password pair and establishes a session.
// Failed verification returns an *auth.Error; anything else (store
// connectivity, token generation) is returned unchanged so the caller's
// error boundary sees the defect rather than a credentials message.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return "", auth.NewCredentialsError()
		}
		return "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// Unreadable stored hash: an auth-domain failure, but not a
		// credentials mismatch the user can fix.
		s.logger.Error("password hash verification failed", "user_id", user.ID, "error", err)
		s.metrics.IncLoginFailed()
		return "", &auth.Error{Type: auth.ErrTypeCallback, Err: err}
	}
	if !match {
		s.metrics.IncLoginFailed()
		return "", auth.NewCredentialsError()
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	sess := &model.Session{UserID: user.ID, Email: user.Email}
	if err := s.sessions.SetSession(ctx, token, sess, s.sessionTTL); err != nil {
		return "", err
	}

	s.metrics.IncLoginSuccess()
	s.logger.Info("login successful", "user_id", user.ID)

	return token, nil
}

// Logout destroys a session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// LoginErrorMessage maps an authentication-domain error to its
// user-facing sentence. Returns false for errors outside the domain,
// which the caller must re-raise rather than swallow.
func LoginErrorMessage(err error) (string, bool) {
	var aerr *auth.Error
	if !errors.As(err, &aerr) {
		return "", false
	}
	if aerr.Type == auth.ErrTypeCredentials {
		return MsgInvalidCredentials, true
	}
	return MsgAuthWentWrong, true
}
