// Package file stores imageshrink settings in ~/.imageshrink/config.toml.
// Dotted keys such as "resize.filter" are written as TOML tables, and the
// file is replaced atomically on every change.
package file
