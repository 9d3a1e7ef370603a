// Package domain holds the plain types shared by every layer of imageshrink:
// resize requests and their outcomes, the workspace that fixes the output
// folder, the commands and events exchanged with the coordinator, and
// settings.
//
// Parsing and validation live here too (ParseDimension, Validate), so a
// request is checked the same way by the form, the CLI and the coordinator.
// The package imports only the standard library.
package domain
