package service

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotFound           = errors.New("cv not found")
	ErrConflict           = errors.New("cv was modified by another request")
	ErrStorageUnavailable = errors.New("photo storage is not configured")
)

// ValidationError carries the ordered, human-readable reasons a write was rejected.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func newValidationError(msgs ...string) error {
	return &ValidationError{Messages: msgs}
}
