package service

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ledgerdash/ledgerdash/internal/auth"
	"github.com/ledgerdash/ledgerdash/internal/form"
	"github.com/ledgerdash/ledgerdash/internal/metrics"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// userStore is the persistence surface the signup pipeline needs.
type userStore interface {
	CreateUser(ctx context.Context, user *model.User) error
}

// authenticator establishes a session after signup.
type authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// UserService runs the signup pipeline: validate, hash, persist, then
// authenticate with the same submission to establish a session.
type UserService struct {
	store   userStore
	views   viewInvalidator
	authsvc authenticator
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(store userStore, views viewInvalidator, authsvc authenticator, logger *slog.Logger, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		views:   views,
		authsvc: authsvc,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Signup validates a submission, hashes the password, persists the
// user, and logs them in. Returns the session token alongside the
// pipeline result; the token is empty unless the result is a redirect.
func (s *UserService) Signup(ctx context.Context, values url.Values) (Result, string) {
	f, errs := form.ParseSignup(values)
	if errs != nil {
		s.metrics.IncValidationFailed("user")
		return ValidationFailed(errs, missingFieldsMsg("Create", "User")), ""
	}

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		s.metrics.IncPersistFailed("user")
		return PersistFailed(dbErrorMsg("Create", "User")), ""
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         f.Name,
		Email:        f.Email,
		PasswordHash: hash,
		Roles:        []string{model.RoleViewer},
		CreatedAt:    s.now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		s.logger.Error("user create failed", "error", err)
		s.metrics.IncPersistFailed("user")
		return PersistFailed(dbErrorMsg("Create", "User")), ""
	}

	s.metrics.IncCreated("user")
	s.logger.Info("user created", "user_id", user.ID)

	// Log the new user in with the submission they just sent. A failure
	// here is not fatal to the signup; they land on the login form instead.
	token, err := s.authsvc.Authenticate(ctx, f.Email, f.Password)
	if err != nil {
		s.logger.Warn("post-signup login failed", "user_id", user.ID, "error", err)
		token = ""
	}

	s.invalidate(ctx, PathDashboard)

	return Redirect(PathDashboard), token
}

func (s *UserService) invalidate(ctx context.Context, path string) {
	if err := s.views.InvalidateView(ctx, path); err != nil {
		s.logger.Warn("view invalidation failed", "path", path, "error", err)
	}
}
