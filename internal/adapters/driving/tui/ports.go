// Package tui provides an interactive terminal user interface for imageshrink.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Coordinator runs resize requests and publishes their outcomes.
	Coordinator driving.Coordinator

	// Preview reads the dimensions of a chosen image. Optional.
	Preview driving.PreviewService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Coordinator == nil {
		return ErrMissingCoordinator
	}
	return nil
}
