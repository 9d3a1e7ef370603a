package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// Ensure Dialog implements the interface.
var _ driven.FileDialog = (*Dialog)(nil)

// Dialog opens the platform's native file picker.
type Dialog struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) (string, error)
}

// NewDialog creates a dialog for the current platform.
func NewDialog() *Dialog {
	return &Dialog{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		run:      runOutput,
	}
}

func runOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// OpenFile shows the picker and blocks until the user chooses or cancels.
func (d *Dialog) OpenFile(ctx context.Context, title string, extensions []string) (string, bool, error) {
	name, args, err := d.command(title, extensions)
	if err != nil {
		return "", false, err
	}

	out, err := d.run(ctx, name, args...)
	if err != nil {
		if isCancel(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", name, err)
	}

	path := strings.TrimSpace(out)
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

// isCancel reports whether err is the exit status every supported tool
// uses for a dismissed dialog.
func isCancel(err error) bool {
	var exitErr interface{ ExitCode() int }
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}

// command picks the tool and arguments for the current platform.
func (d *Dialog) command(title string, extensions []string) (string, []string, error) {
	switch d.goos {
	case osLinux:
		if d.getenv("DISPLAY") == "" && d.getenv("WAYLAND_DISPLAY") == "" {
			return "", nil, domain.ErrDialogUnavailable
		}
		globs := caseGlobs(extensions)
		if _, err := d.lookPath("zenity"); err == nil {
			return "zenity", []string{
				"--file-selection",
				"--title=" + title,
				"--file-filter=Images | " + strings.Join(globs, " "),
			}, nil
		}
		if _, err := d.lookPath("kdialog"); err == nil {
			return "kdialog", []string{
				"--title", title,
				"--getopenfilename", ".",
				strings.Join(globs, " ") + "|Images",
			}, nil
		}
		return "", nil, domain.ErrDialogUnavailable

	case osDarwin:
		quoted := make([]string, len(extensions))
		for i, ext := range extensions {
			quoted[i] = `"` + ext + `"`
		}
		script := fmt.Sprintf(`POSIX path of (choose file with prompt %q of type {%s})`,
			title, strings.Join(quoted, ","))
		return "osascript", []string{"-e", script}, nil

	case osWindows:
		patterns := make([]string, len(extensions))
		for i, ext := range extensions {
			patterns[i] = "*." + ext
		}
		script := strings.Join([]string{
			"Add-Type -AssemblyName System.Windows.Forms",
			"$d = New-Object System.Windows.Forms.OpenFileDialog",
			"$d.Title = '" + strings.ReplaceAll(title, "'", "''") + "'",
			"$d.Filter = 'Images|" + strings.Join(patterns, ";") + "'",
			"if ($d.ShowDialog() -eq 'OK') { $d.FileName }",
		}, "; ")
		return "powershell", []string{"-NoProfile", "-STA", "-Command", script}, nil

	default:
		return "", nil, domain.ErrDialogUnavailable
	}
}

// caseGlobs returns lower-case globs followed by upper-case ones; zenity and
// kdialog match patterns case-sensitively.
func caseGlobs(extensions []string) []string {
	globs := make([]string, 0, 2*len(extensions))
	for _, ext := range extensions {
		globs = append(globs, "*."+strings.ToLower(ext))
	}
	for _, ext := range extensions {
		globs = append(globs, "*."+strings.ToUpper(ext))
	}
	return globs
}
