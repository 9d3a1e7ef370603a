package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutputDirName is the folder created under the user's home directory.
const DefaultOutputDirName = "imageshrink"

// Workspace is the explicit context the coordinator works in.
// There is exactly one output directory per workspace.
type Workspace struct {
	HomeDir   string
	OutputDir string
}

// NewWorkspace builds a workspace rooted at home.
// dirName must be a single path segment.
func NewWorkspace(home, dirName string) (Workspace, error) {
	if home == "" {
		return Workspace{}, fmt.Errorf("%w: home directory is empty", ErrInvalidInput)
	}
	if dirName == "" {
		dirName = DefaultOutputDirName
	}
	if err := ValidateDirName(dirName); err != nil {
		return Workspace{}, err
	}
	return Workspace{
		HomeDir:   home,
		OutputDir: filepath.Join(home, dirName),
	}, nil
}

// ValidateDirName rejects output folder names that are not a single segment.
func ValidateDirName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: output folder %q must be a single directory name", ErrInvalidInput, name)
	}
	return nil
}

// OutputPath returns where a file called name is written.
func (w Workspace) OutputPath(name string) string {
	return filepath.Join(w.OutputDir, filepath.Base(name))
}
