package tui

import "errors"

// ErrMissingCoordinator is returned when the coordinator is not provided.
var ErrMissingCoordinator = errors.New("tui: coordinator is required")
