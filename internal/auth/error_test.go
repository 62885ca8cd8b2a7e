package auth

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("hash mismatch")
	err := &Error{Type: ErrTypeCallback, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestError_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("login: %w", NewCredentialsError())

	var aerr *Error
	if !errors.As(wrapped, &aerr) {
		t.Fatal("expected errors.As to find *Error through wrapping")
	}
	if aerr.Type != ErrTypeCredentials {
		t.Errorf("expected %s, got %s", ErrTypeCredentials, aerr.Type)
	}
}

func TestNewCredentialsError(t *testing.T) {
	t.Parallel()

	err := NewCredentialsError()
	if err.Type != ErrTypeCredentials {
		t.Errorf("expected %s, got %s", ErrTypeCredentials, err.Type)
	}
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
