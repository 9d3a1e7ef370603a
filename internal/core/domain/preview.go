package domain

import "path/filepath"

// Preview describes a chosen image before it is submitted.
type Preview struct {
	Path string
	Name string

	// Width and Height are zero when the image could not be decoded.
	Width  int
	Height int
}

// NewPreview returns a preview without dimensions.
func NewPreview(path string) Preview {
	return Preview{Path: path, Name: filepath.Base(path)}
}

// HasDimensions returns true if the intrinsic size is known.
func (p Preview) HasDimensions() bool {
	return p.Width > 0 && p.Height > 0
}
