package auth

import "fmt"

// Error types reported by the credentials flow. Anything outside these
// is not an authentication-domain error and must propagate unchanged.
const (
	ErrTypeCredentials = "CredentialsSignin"
	ErrTypeCallback    = "CallbackRouteError"
)

// Error is an authentication-domain failure with a known kind.
type Error struct {
	Type string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Type, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Type)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewCredentialsError reports a failed email/password verification.
func NewCredentialsError() *Error {
	return &Error{Type: ErrTypeCredentials}
}
