package resizer

import (
	"fmt"
	"image"
	_ "image/gif"  // registers the gif decoder
	_ "image/jpeg" // registers the jpeg decoder
	_ "image/png"  // registers the png decoder
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

var _ driven.ImageInspector = (*Inspector)(nil)

// Inspector reads image dimensions as the resizer will see them.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

// Dimensions decodes only the header, except for JPEG: an EXIF orientation
// tag can swap width and height, so JPEGs are decoded with the same
// auto-orientation the resizer applies.
func (i *Inspector) Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode header: %w", err)
	}
	if format != "jpeg" {
		return cfg.Width, cfg.Height, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, fmt.Errorf("decode jpeg: %w", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
