package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for imageshrink resources.
	uriScheme = "imageshrink://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current imageshrink settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for files in the output directory.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "outputs/{name}",
		Name:        "output-image",
		Description: "Path and dimensions of a resized image in the output folder",
		MIMEType:    "application/json",
	}, s.handleOutputResource)
}

type settingsInfo struct {
	OutputDir       string `json:"output_dir"`
	OpenAfterResize bool   `json:"open_after_resize"`
	Filter          string `json:"filter"`
	JPEGQuality     int    `json:"jpeg_quality"`
}

// handleSettingsResource returns the effective settings as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	}

	info := settingsInfo{
		OutputDir:       s.ports.Coordinator.Workspace().OutputDir,
		OpenAfterResize: settings.Output.OpenAfterResize,
		Filter:          settings.Resize.Filter.String(),
		JPEGQuality:     settings.Resize.JPEGQuality,
	}

	return jsonResource(req.Params.URI, info)
}

type outputInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// handleOutputResource describes one file in the output directory.
func (s *Server) handleOutputResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractOutputName(req.Params.URI)
	if name == "" || s.ports.Preview == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	path := s.ports.Coordinator.Workspace().OutputPath(name)
	preview, err := s.ports.Preview.Load(path)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, outputInfo{
		Path:   preview.Path,
		Width:  preview.Width,
		Height: preview.Height,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractOutputName extracts the file name from imageshrink://outputs/{name}.
// Names containing a path separator are rejected.
func extractOutputName(uri string) string {
	const prefix = uriScheme + "outputs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || strings.Contains(name, "/") {
		return ""
	}
	return name
}
