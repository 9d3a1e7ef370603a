// Command imageshrink resizes images to an exact width and height.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/config/environ"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/config/file"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/filesystem"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/platform"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/resizer"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/cli"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

const logFileName = "imageshrink.log"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	configDir, err := file.DefaultDir()
	if err != nil {
		return report(fmt.Errorf("locating config directory: %w", err))
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return report(fmt.Errorf("loading config: %w", err))
	}

	settingsService := services.NewSettingsService(store)
	stored, err := settingsService.Get()
	if err != nil {
		return report(fmt.Errorf("reading settings: %w", err))
	}
	settings := applyEnvironment(*stored)

	home, err := os.UserHomeDir()
	if err != nil {
		return report(fmt.Errorf("locating home directory: %w", err))
	}

	workspace, err := domain.NewWorkspace(home, settings.Output.DirName)
	if err != nil {
		warn(fmt.Errorf("invalid output folder %q, using default: %w", settings.Output.DirName, err))
		workspace, err = domain.NewWorkspace(home, domain.DefaultOutputDirName)
		if err != nil {
			return report(err)
		}
	}

	coordinator := services.NewCoordinator(
		workspace,
		filesystem.NewLocal(),
		resizer.NewResizer(settings.Resize.Filter, settings.Resize.JPEGQuality),
		platform.NewDialog(),
		platform.NewShell(),
	)
	coordinator.SetOpenAfterResize(settings.Output.OpenAfterResize)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Coordinator:     coordinator,
		Preview:         services.NewPreviewService(resizer.NewInspector()),
		Settings:        settingsService,
		Runner:          coordinator,
		OpenAfterResize: settings.Output.OpenAfterResize,
		LogPath:         filepath.Join(configDir, logFileName),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra reports command errors itself
	return cli.Execute(ctx)
}

// applyEnvironment layers IMAGESHRINK_* variables over the stored settings.
func applyEnvironment(settings domain.AppSettings) domain.AppSettings {
	overrides, err := environ.Load()
	if err != nil {
		warn(err)
		return settings
	}
	if overrides.IsEmpty() {
		return settings
	}

	effective, err := overrides.Apply(settings)
	if err != nil {
		warn(err)
	}
	return effective
}

// warn prints before --verbose is parsed, so it bypasses the logger.
func warn(err error) {
	fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
}

func report(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
