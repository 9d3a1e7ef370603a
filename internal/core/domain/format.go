package domain

import (
	"path/filepath"
	"strings"
)

// ImageFormat identifies an image encoding.
type ImageFormat string

// Supported image formats.
const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
	FormatWebP ImageFormat = "webp"
)

// ImageExtensions lists the file extensions (without dot) offered by file pickers.
var ImageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

// FormatFromPath derives the image format from a file's extension.
// Returns ErrUnsupportedFormat for anything outside ImageExtensions.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "gif":
		return FormatGIF, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// IsImagePath returns true if the path has one of ImageExtensions.
func IsImagePath(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// IsDecodeOnly returns true for formats that can be read but not written.
func (f ImageFormat) IsDecodeOnly() bool {
	return f == FormatWebP
}

// Extension returns the canonical file extension, including the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatGIF:
		return ".gif"
	case FormatWebP:
		return ".webp"
	default:
		return ""
	}
}

// String returns the string representation.
func (f ImageFormat) String() string {
	return string(f)
}

// OutputName returns the file name a resized copy of source is written under
// when encoded as format. The original base name is kept unless the encoding
// changed, in which case only the extension is replaced.
func OutputName(source string, format ImageFormat) string {
	name := filepath.Base(source)
	srcFormat, err := FormatFromPath(source)
	if err != nil || srcFormat == format {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + format.Extension()
}
