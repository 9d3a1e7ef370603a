package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the output folder",
	Long:  `Open the output folder in the system file browser, creating it if needed.`,
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an image with the system file dialog",
	Long: `Open the native file dialog and print the chosen image path.

Nothing is printed if the dialog is cancelled. Useful in scripts:
  imageshrink resize "$(imageshrink pick)" -W 200 -H 150`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(pickCmd)
}

func runOpen(cmd *cobra.Command, _ []string) error {
	if coordinator == nil {
		return errNoCoordinator
	}

	if err := coordinator.OpenOutputDirectory(cmd.Context()); err != nil {
		return fmt.Errorf("opening output folder: %w", err)
	}
	cmd.Printf("Opened %s\n", coordinator.Workspace().OutputDir)
	return nil
}

func runPick(cmd *cobra.Command, _ []string) error {
	if coordinator == nil {
		return errNoCoordinator
	}

	path, ok, err := coordinator.PickFile(cmd.Context())
	if errors.Is(err, domain.ErrDialogUnavailable) {
		return fmt.Errorf("%w: install zenity or kdialog, or pass a path to 'imageshrink resize'", err)
	}
	if err != nil {
		return fmt.Errorf("file dialog failed: %w", err)
	}
	if !ok {
		return nil
	}

	cmd.Println(path)
	return nil
}
