// Package filesystem provides the local-disk implementation of driven.FileSystem.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// Ensure Local implements the interface.
var _ driven.FileSystem = (*Local)(nil)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Local reads and writes the real filesystem.
type Local struct{}

// NewLocal creates a local filesystem adapter.
func NewLocal() *Local {
	return &Local{}
}

// ReadFile returns the contents of path.
func (l *Local) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// EnsureDir creates dir (one level only) unless it already exists as a directory.
func (l *Local) EnsureDir(dir string) error {
	err := os.Mkdir(dir, dirPerm)
	if err == nil || !errors.Is(err, fs.ErrExist) {
		return err
	}

	info, statErr := os.Stat(dir)
	if statErr != nil {
		return statErr
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", dir)
	}
	return nil
}

// WriteFile writes data to a temporary file beside path and renames it
// into place, so readers never observe a partial image. An existing file
// at path is replaced.
func (l *Local) WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".imageshrink-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
