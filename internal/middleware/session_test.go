package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ledgerdash/ledgerdash/internal/auth"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

const validToken = "a3f8b2c1d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1"

type fakeSessionReader struct {
	sessions map[string]*model.Session
	err      error
}

func (f *fakeSessionReader) GetSession(ctx context.Context, token string) (*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

type fakeUserGetter struct {
	users map[string]*model.User
}

func (f *fakeUserGetter) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func sessionConfig(sessions *fakeSessionReader, users *fakeUserGetter) SessionConfig {
	return SessionConfig{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Repository: users,
		Cache:      sessions,
		CookieName: "dashboard_session",
	}
}

func TestSession_Rejected(t *testing.T) {
	testCases := []struct {
		name     string
		cookie   *http.Cookie
		sessions *fakeSessionReader
		users    *fakeUserGetter
	}{
		{
			name:     "missing cookie",
			cookie:   nil,
			sessions: &fakeSessionReader{},
			users:    &fakeUserGetter{},
		},
		{
			name:     "empty cookie value",
			cookie:   &http.Cookie{Name: "dashboard_session", Value: ""},
			sessions: &fakeSessionReader{},
			users:    &fakeUserGetter{},
		},
		{
			name:     "malformed token",
			cookie:   &http.Cookie{Name: "dashboard_session", Value: "not-a-token"},
			sessions: &fakeSessionReader{},
			users:    &fakeUserGetter{},
		},
		{
			name:     "unknown token",
			cookie:   &http.Cookie{Name: "dashboard_session", Value: validToken},
			sessions: &fakeSessionReader{sessions: map[string]*model.Session{}},
			users:    &fakeUserGetter{},
		},
		{
			name:   "session store error",
			cookie: &http.Cookie{Name: "dashboard_session", Value: validToken},
			sessions: &fakeSessionReader{
				err: errors.New("redis down"),
			},
			users: &fakeUserGetter{},
		},
		{
			name:   "user no longer exists",
			cookie: &http.Cookie{Name: "dashboard_session", Value: validToken},
			sessions: &fakeSessionReader{
				sessions: map[string]*model.Session{
					validToken: {UserID: "usr-gone", Email: "gone@example.com"},
				},
			},
			users: &fakeUserGetter{users: map[string]*model.User{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := Session(sessionConfig(tc.sessions, tc.users))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Every rejection answers the same way to prevent probing.
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
			}
			if body := rec.Body.String(); body != `{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}` {
				t.Errorf("unexpected body: %s", body)
			}
		})
	}
}

func TestSession_ValidTokenInjectsUser(t *testing.T) {
	sessions := &fakeSessionReader{
		sessions: map[string]*model.Session{
			validToken: {UserID: "usr-1", Email: "ada@example.com"},
		},
	}
	users := &fakeUserGetter{
		users: map[string]*model.User{
			"usr-1": {ID: "usr-1", Name: "Ada Lovelace", Email: "ada@example.com", Roles: []string{model.RoleViewer}},
		},
	}

	var seen *model.User
	handler := Session(sessionConfig(sessions, users))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "dashboard_session", Value: validToken})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if seen == nil {
		t.Fatal("expected user in request context")
	}
	if seen.ID != "usr-1" || seen.Email != "ada@example.com" {
		t.Errorf("unexpected user in context: %+v", seen)
	}
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		user       *model.User
		wantStatus int
	}{
		{
			name:       "no user in context",
			user:       nil,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "viewer forbidden",
			user:       &model.User{ID: "usr-1", Roles: []string{model.RoleViewer}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin passes",
			user:       &model.User{ID: "usr-2", Roles: []string{model.RoleAdmin}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin with extra roles passes",
			user:       &model.User{ID: "usr-3", Roles: []string{model.RoleAdmin, model.RoleViewer}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv-1", nil)
			if tc.user != nil {
				req = req.WithContext(auth.ContextWithUser(req.Context(), tc.user))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
