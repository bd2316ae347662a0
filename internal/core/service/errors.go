package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable wraps any failure of the underlying store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMalformedInput reports a request missing required fields.
	ErrMalformedInput = errors.New("malformed input")

	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrMissingExpiry  = errors.New("token has no expiry")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrAdminNotConfigured = errors.New("admin account not configured")
	ErrNoDocument         = errors.New("no matching document")
)

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
