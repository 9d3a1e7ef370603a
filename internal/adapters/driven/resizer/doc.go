// Package resizer adapts github.com/disintegration/imaging to the
// driven.ImageResizer and driven.ImageInspector ports.
//
// Output encoding follows the source format. WebP can be decoded but not
// encoded, so WebP sources are written as PNG.
package resizer
