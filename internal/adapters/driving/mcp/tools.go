package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// ResizeInput is the input schema for the resize_image tool.
type ResizeInput struct {
	Path   string `json:"path" jsonschema:"path of the image to resize, relative paths resolve against the server working directory"`
	Width  int    `json:"width" jsonschema:"target width in pixels, greater than zero"`
	Height int    `json:"height" jsonschema:"target height in pixels, greater than zero"`
}

// ResizeOutput is the output schema for the resize_image tool.
type ResizeOutput struct {
	Succeeded  bool   `json:"succeeded"`
	Message    string `json:"message"`
	OutputPath string `json:"output_path,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// InfoInput is the input schema for the image_info tool.
type InfoInput struct {
	Path string `json:"path" jsonschema:"path of the image to inspect"`
}

// InfoOutput is the output schema for the image_info tool.
type InfoOutput struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// EmptyInput is used by tools without arguments.
type EmptyInput struct{}

// DirectoryOutput reports the output directory.
type DirectoryOutput struct {
	Path string `json:"path"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resize_image",
		Description: "Resize an image to exactly width x height and write it to the output folder",
	}, s.handleResize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "image_info",
		Description: "Report the format and pixel dimensions of an image",
	}, s.handleInfo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "output_directory",
		Description: "Return the folder resized images are written to",
	}, s.handleOutputDirectory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open_output_folder",
		Description: "Open the output folder in the desktop file browser",
	}, s.handleOpenOutputFolder)
}

// handleResize runs one resize synchronously. A failed resize is reported
// in the output rather than as a tool error.
func (s *Server) handleResize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResizeInput,
) (*mcp.CallToolResult, ResizeOutput, error) {
	source, err := absPath(input.Path)
	if err != nil {
		return nil, ResizeOutput{}, err
	}

	req := domain.ResizeRequest{
		ID:         uuid.NewString(),
		SourcePath: source,
		Width:      input.Width,
		Height:     input.Height,
	}

	outcome := s.ports.Coordinator.Resize(ctx, req)

	return nil, ResizeOutput{
		Succeeded:  outcome.Succeeded(),
		Message:    outcome.Summary(),
		OutputPath: outcome.OutputPath,
		Width:      outcome.Width,
		Height:     outcome.Height,
	}, nil
}

// handleInfo returns the image's format and dimensions.
func (s *Server) handleInfo(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input InfoInput,
) (*mcp.CallToolResult, InfoOutput, error) {
	if s.ports.Preview == nil {
		return nil, InfoOutput{}, errors.New("image inspection not available")
	}

	format, err := domain.FormatFromPath(input.Path)
	if err != nil {
		return nil, InfoOutput{}, fmt.Errorf("%s: %w", input.Path, err)
	}

	path, err := absPath(input.Path)
	if err != nil {
		return nil, InfoOutput{}, err
	}

	preview, err := s.ports.Preview.Load(path)
	if err != nil {
		return nil, InfoOutput{}, err
	}

	return nil, InfoOutput{
		Path:   preview.Path,
		Name:   preview.Name,
		Format: format.String(),
		Width:  preview.Width,
		Height: preview.Height,
	}, nil
}

func (s *Server) handleOutputDirectory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DirectoryOutput, error) {
	return nil, DirectoryOutput{Path: s.ports.Coordinator.Workspace().OutputDir}, nil
}

func (s *Server) handleOpenOutputFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DirectoryOutput, error) {
	if err := s.ports.Coordinator.OpenOutputDirectory(ctx); err != nil {
		return nil, DirectoryOutput{}, fmt.Errorf("opening output folder: %w", err)
	}
	return nil, DirectoryOutput{Path: s.ports.Coordinator.Workspace().OutputDir}, nil
}

// absPath resolves p against the server's working directory. An empty path
// stays empty so the coordinator reports the missing source.
func absPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	return abs, nil
}
