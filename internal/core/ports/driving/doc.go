// Package driving holds the interfaces the TUI, CLI, watch and MCP adapters
// call into. internal/core/services implements them.
package driving
