package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoSettings = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change imageshrink settings.

Settings are stored in ~/.imageshrink/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  output.dir_name           - Folder under your home directory for results
  output.open_after_resize  - Open the folder after each resize (true/false)
  resize.filter             - lanczos, catmullrom, linear, box or nearest
  resize.jpeg_quality       - JPEG quality from 1 to 100`,
	Example: `  imageshrink settings set resize.filter box`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Folder: %s\n", settings.Output.DirName)
	if coordinator != nil {
		cmd.Printf("  Path: %s\n", coordinator.Workspace().OutputDir)
	}
	cmd.Printf("  Open after resize: %s\n", yesNo(settings.Output.OpenAfterResize))
	cmd.Println()

	cmd.Println("[Resize]")
	cmd.Printf("  Filter: %s\n", settings.Resize.Filter.Description())
	cmd.Printf("  JPEG quality: %d\n", settings.Resize.JPEGQuality)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'imageshrink settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
