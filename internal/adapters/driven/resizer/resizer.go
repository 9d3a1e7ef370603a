package resizer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the webp decoder

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// Ensure Resizer implements the interface.
var _ driven.ImageResizer = (*Resizer)(nil)

// Resizer resamples images with a fixed filter and JPEG quality.
type Resizer struct {
	filter      imaging.ResampleFilter
	jpegQuality int
}

// NewResizer creates a resizer. Unknown filters fall back to Lanczos and
// out-of-range qualities to 95.
func NewResizer(filter domain.ResampleFilter, jpegQuality int) *Resizer {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = 95
	}
	return &Resizer{
		filter:      resampleFilter(filter),
		jpegQuality: jpegQuality,
	}
}

// Resize decodes data, resamples it to exactly width x height and encodes it.
func (r *Resizer) Resize(
	ctx context.Context,
	data []byte,
	format domain.ImageFormat,
	width, height int,
) (driven.EncodedImage, error) {
	if err := ctx.Err(); err != nil {
		return driven.EncodedImage{}, err
	}
	if width <= 0 || height <= 0 {
		return driven.EncodedImage{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimension, width, height)
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return driven.EncodedImage{}, fmt.Errorf("decode %s image: %w", format, err)
	}

	dst := imaging.Resize(src, width, height, r.filter)

	outFormat := format
	if format.IsDecodeOnly() {
		outFormat = domain.FormatPNG
	}
	encFormat, err := encoderFormat(outFormat)
	if err != nil {
		return driven.EncodedImage{}, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, encFormat, imaging.JPEGQuality(r.jpegQuality)); err != nil {
		return driven.EncodedImage{}, fmt.Errorf("encode %s image: %w", outFormat, err)
	}

	return driven.EncodedImage{Data: buf.Bytes(), Format: outFormat}, nil
}

func encoderFormat(f domain.ImageFormat) (imaging.Format, error) {
	switch f {
	case domain.FormatJPEG:
		return imaging.JPEG, nil
	case domain.FormatPNG:
		return imaging.PNG, nil
	case domain.FormatGIF:
		return imaging.GIF, nil
	case domain.FormatWebP:
		return 0, fmt.Errorf("%w: cannot encode %s", domain.ErrUnsupportedFormat, f)
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
	}
}

func resampleFilter(f domain.ResampleFilter) imaging.ResampleFilter {
	switch f {
	case domain.FilterCatmullRom:
		return imaging.CatmullRom
	case domain.FilterLinear:
		return imaging.Linear
	case domain.FilterBox:
		return imaging.Box
	case domain.FilterNearest:
		return imaging.NearestNeighbor
	case domain.FilterLanczos:
		return imaging.Lanczos
	default:
		return imaging.Lanczos
	}
}
