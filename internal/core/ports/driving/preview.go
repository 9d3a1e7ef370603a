package driving

import "github.com/belmqadem/Image-Resizer/internal/core/domain"

// PreviewService reads details of a chosen image for display.
type PreviewService interface {
	// Load returns the display name and, when decodable, the dimensions
	// of the image at path. The returned preview is always usable; err
	// only explains why dimensions are missing.
	Load(path string) (domain.Preview, error)
}
