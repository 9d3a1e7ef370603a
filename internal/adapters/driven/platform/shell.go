package platform

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// Ensure Shell implements the interface.
var _ driven.Shell = (*Shell)(nil)

// Shell opens paths with the system default handler.
type Shell struct {
	goos  string
	start func(name string, args ...string) error
}

// NewShell creates a shell for the current platform.
func NewShell() *Shell {
	return &Shell{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// OpenPath opens path without waiting for the handler to exit.
func (s *Shell) OpenPath(path string) error {
	switch s.goos {
	case osDarwin:
		return s.start("open", path)
	case osLinux:
		return s.start("xdg-open", path)
	case osWindows:
		return s.start("explorer", path)
	default:
		return fmt.Errorf("unsupported platform: %s", s.goos)
	}
}
