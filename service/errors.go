package service

import (
	"errors"
	"fmt"
)

// Error taxonomy: handlers map these onto HTTP status codes. Peer failures are
// never part of it; the peer is always optional and its errors stop here.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid email or password")
	ErrEmailTaken   = errors.New("user with this email already exists")
)

// ValidationError is a request-level validation failure (HTTP 400).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
