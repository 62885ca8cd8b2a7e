package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

type fakeUserStore struct {
	created *model.User
	err     error
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	f.created = user
	return nil
}

type fakeAuthenticator struct {
	token string
	err   error
	email string
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	f.email = email
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func validSignupValues() url.Values {
	return url.Values{
		"name":     {"Ada Lovelace"},
		"email":    {"ada@example.com"},
		"password": {"correct-horse"},
	}
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	views := &fakeInvalidator{}
	authn := &fakeAuthenticator{token: "tok-1"}
	svc := NewUserService(store, views, authn, discardLogger(), nil)

	res, token := svc.Signup(context.Background(), validSignupValues())

	if res.Kind != KindRedirect || res.RedirectPath != PathDashboard {
		t.Fatalf("expected redirect to %s, got %+v", PathDashboard, res)
	}
	if token != "tok-1" {
		t.Errorf("expected session token, got %q", token)
	}

	if store.created == nil {
		t.Fatal("expected user to be persisted")
	}
	if store.created.PasswordHash == "correct-horse" || store.created.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if !strings.HasPrefix(store.created.PasswordHash, "$argon2id$") {
		t.Errorf("unexpected hash format: %s", store.created.PasswordHash)
	}
	if len(store.created.Roles) != 1 || store.created.Roles[0] != model.RoleViewer {
		t.Errorf("new users get the viewer role, got %v", store.created.Roles)
	}
	if authn.email != "ada@example.com" {
		t.Errorf("expected post-signup login for ada@example.com, got %s", authn.email)
	}
	if len(views.paths) != 1 || views.paths[0] != PathDashboard {
		t.Errorf("expected dashboard view invalidation, got %v", views.paths)
	}
}

func TestSignup_ValidationFailed(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	svc := NewUserService(store, &fakeInvalidator{}, &fakeAuthenticator{}, discardLogger(), nil)

	res, token := svc.Signup(context.Background(), url.Values{
		"name":     {"Ada"},
		"email":    {"ada@example.com"},
		"password": {"short"},
	})

	if res.Kind != KindValidationFailed {
		t.Fatalf("expected validation failure, got kind %d", res.Kind)
	}
	if res.Message != "Missing Fields. Failed to Create User." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if token != "" {
		t.Error("no token may be issued on validation failure")
	}
	if store.created != nil {
		t.Error("no statement may run on validation failure")
	}
}

func TestSignup_PersistFailed(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{err: errors.New("duplicate email")}
	svc := NewUserService(store, &fakeInvalidator{}, &fakeAuthenticator{}, discardLogger(), nil)

	res, token := svc.Signup(context.Background(), validSignupValues())

	if res.Kind != KindPersistFailed {
		t.Fatalf("expected persist failure, got kind %d", res.Kind)
	}
	if res.Message != "Database Error: Failed to Create User." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if token != "" {
		t.Error("no token may be issued on persist failure")
	}
}

func TestSignup_LoginFailureStillRedirects(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	authn := &fakeAuthenticator{err: errors.New("redis down")}
	svc := NewUserService(store, &fakeInvalidator{}, authn, discardLogger(), nil)

	res, token := svc.Signup(context.Background(), validSignupValues())

	if res.Kind != KindRedirect {
		t.Fatalf("signup must succeed even when the follow-up login fails, got kind %d", res.Kind)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}
