package driven

import (
	"context"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// EncodedImage is the output of an ImageResizer.
type EncodedImage struct {
	Data []byte

	// Format is the encoding actually used. It equals the source format
	// unless the source format cannot be encoded.
	Format domain.ImageFormat
}

// ImageResizer is the external resize routine.
type ImageResizer interface {
	// Resize decodes data as format, resamples it to width x height and
	// encodes the result.
	Resize(ctx context.Context, data []byte, format domain.ImageFormat, width, height int) (EncodedImage, error)
}

// ImageInspector reads image metadata without decoding pixels.
type ImageInspector interface {
	// Dimensions returns the intrinsic width and height of the image at path.
	Dimensions(path string) (width, height int, err error)
}
