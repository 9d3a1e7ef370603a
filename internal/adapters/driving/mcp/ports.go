package mcp

import (
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Coordinator runs resize requests and owns the output directory.
	Coordinator driving.Coordinator

	// Preview reads image dimensions. Optional.
	Preview driving.PreviewService

	// Settings exposes the current configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Coordinator == nil {
		return ErrMissingCoordinator
	}
	return nil
}
