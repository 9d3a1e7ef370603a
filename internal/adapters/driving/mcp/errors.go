// Package mcp provides an MCP (Model Context Protocol) server adapter for imageshrink.
// It lets AI assistants resize local images and inspect the output folder.
package mcp

import "errors"

// ErrMissingCoordinator is returned when the coordinator is not provided.
var ErrMissingCoordinator = errors.New("mcp: coordinator is required")
