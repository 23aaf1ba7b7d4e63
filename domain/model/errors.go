package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every entity kind. Callers classify with errors.Is;
// the wrapped message carries the human-readable reason.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid")
	// ErrAmbiguous reports more than one stored object carrying an id that must be unique.
	ErrAmbiguous = errors.New("ambiguous")
	// ErrUnsupported reports an operation the configured store backend cannot serve.
	ErrUnsupported = errors.New("unsupported")
)

// NotFound reports an unknown id of the given kind.
func NotFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

// Conflictf reports a referential-integrity or uniqueness violation.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Invalidf reports caller-supplied attributes that fail a schema or business rule.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Ambiguous reports that n objects matched an id lookup.
func Ambiguous(kind, id string, n int) error {
	return fmt.Errorf("%w: %d objects carry %s id %q", ErrAmbiguous, n, kind, id)
}

// Unsupportedf reports an operation the configured store backend cannot serve.
func Unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}
