package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func loggedOutput(t *testing.T, path string, status int) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	return buf.String()
}

func TestLogger_LogsRequests(t *testing.T) {
	out := loggedOutput(t, "/dashboard/invoices", http.StatusOK)
	if out == "" {
		t.Fatal("expected a log line for a regular request")
	}
	if !strings.Contains(out, `"path":"/dashboard/invoices"`) {
		t.Errorf("log line missing path: %s", out)
	}
	if !strings.Contains(out, `"status_code":200`) {
		t.Errorf("log line missing status: %s", out)
	}
}

func TestLogger_ErrorLevelOn500(t *testing.T) {
	out := loggedOutput(t, "/dashboard/invoices", http.StatusInternalServerError)
	if !strings.Contains(out, `"level":"ERROR"`) {
		t.Errorf("expected ERROR level for 500, got: %s", out)
	}
}

func TestLogger_SkipsHealthyProbes(t *testing.T) {
	for _, path := range []string{"/healthz", "/readyz"} {
		if out := loggedOutput(t, path, http.StatusOK); out != "" {
			t.Errorf("healthy probe %s should not be logged, got: %s", path, out)
		}
	}
}

func TestLogger_LogsFailingProbes(t *testing.T) {
	out := loggedOutput(t, "/readyz", http.StatusServiceUnavailable)
	if out == "" {
		t.Fatal("failing probe must be logged")
	}
	if !strings.Contains(out, `"status_code":503`) {
		t.Errorf("log line missing status: %s", out)
	}
}
