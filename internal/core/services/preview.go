package services

import (
	"errors"
	"fmt"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

// Ensure PreviewService implements the interface.
var _ driving.PreviewService = (*PreviewService)(nil)

// PreviewService reads image details for the UI.
type PreviewService struct {
	inspector driven.ImageInspector
}

// NewPreviewService creates a new preview service.
func NewPreviewService(inspector driven.ImageInspector) *PreviewService {
	return &PreviewService{inspector: inspector}
}

// Load returns the preview for path. Decoding is best-effort: on error the
// preview still carries the display name.
func (s *PreviewService) Load(path string) (domain.Preview, error) {
	preview := domain.NewPreview(path)
	if s.inspector == nil {
		return preview, errors.New("image inspector not configured")
	}

	width, height, err := s.inspector.Dimensions(path)
	if err != nil {
		logger.Warn("read dimensions of %s: %v", path, err)
		return preview, fmt.Errorf("read dimensions: %w", err)
	}

	preview.Width = width
	preview.Height = height
	return preview, nil
}
