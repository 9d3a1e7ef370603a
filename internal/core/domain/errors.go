package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDimension indicates a width or height that is not a positive integer.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrMissingInput indicates a resize request arrived without a source path.
	ErrMissingInput = errors.New("no source image provided")

	// ErrUnsupportedFormat indicates a file whose extension is not a supported image type.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrDialogUnavailable indicates no native file dialog could be found on this system.
	ErrDialogUnavailable = errors.New("native file dialog unavailable")

	// ErrCoordinatorStopped indicates a command was sent to a coordinator that is not running.
	ErrCoordinatorStopped = errors.New("coordinator is not running")
)

// DimensionError reports why a width or height value was rejected.
type DimensionError struct {
	// Field is "width" or "height".
	Field string

	// Value is the raw text that failed to parse.
	Value string

	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements error.
func (e *DimensionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}
