// Package cli provides the imageshrink command line interface.
// It is a driving adapter: commands translate flags and arguments into
// calls on the coordinator and the other driving ports.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	coordinator     driving.Coordinator
	previewService  driving.PreviewService
	settingsService driving.SettingsService
	runner          Runner
	logPath         string
	openAfterResize bool
)

var errNoCoordinator = errors.New("coordinator not configured")

// Runner starts and stops the coordinator's command loop. Only
// long-running commands start it.
type Runner interface {
	Start(ctx context.Context) error
	Stop()
}

// Services groups the ports the commands use.
type Services struct {
	Coordinator driving.Coordinator
	Preview     driving.PreviewService
	Settings    driving.SettingsService
	Runner      Runner

	// OpenAfterResize is the effective setting, after environment overrides.
	OpenAfterResize bool

	// LogPath is where the TUI writes logs while it owns the terminal.
	LogPath string
}

var rootCmd = &cobra.Command{
	Use:   "imageshrink",
	Short: "Resize images from the terminal",
	Long: `imageshrink resizes images to an exact width and height.

Run without a subcommand to open the interactive terminal UI. Resized
copies are written to the output folder in your home directory
(~/imageshrink by default), keeping the original file name.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	coordinator = s.Coordinator
	previewService = s.Preview
	settingsService = s.Settings
	runner = s.Runner
	logPath = s.LogPath
	openAfterResize = s.OpenAfterResize
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
