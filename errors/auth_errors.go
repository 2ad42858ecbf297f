// api/errors/auth_errors.go
package errors

import (
	"errors"
	"fmt"
)

// AuthErrorKind classifies why a credential was rejected.
type AuthErrorKind string

const (
	AuthMissingToken AuthErrorKind = "missing_token"
	AuthInvalidToken AuthErrorKind = "invalid_token"
	AuthExpired      AuthErrorKind = "expired"
	AuthRevoked      AuthErrorKind = "revoked"
)

// Sentinels matched with errors.Is against any *AuthError of the same kind.
var (
	ErrMissingToken = &AuthError{Kind: AuthMissingToken}
	ErrInvalidToken = &AuthError{Kind: AuthInvalidToken}
	ErrTokenExpired = &AuthError{Kind: AuthExpired}
	ErrTokenRevoked = &AuthError{Kind: AuthRevoked}
)

// AuthError is returned by token validation. Request handling stops on it.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func NewAuthError(kind AuthErrorKind, err error) *AuthError {
	return &AuthError{Kind: kind, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is reports kind equality so errors.Is(err, ErrTokenRevoked) works on wrapped errors.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Message is the client-facing text for the rejection.
func (e *AuthError) Message() string {
	switch e.Kind {
	case AuthMissingToken:
		return "Access token is required"
	case AuthExpired:
		return "Token has expired"
	case AuthRevoked:
		return "Token has been invalidated"
	default:
		return "Invalid token"
	}
}

// AsAuthError extracts an *AuthError from err.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
