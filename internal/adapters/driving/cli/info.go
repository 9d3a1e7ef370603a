package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show an image's format and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if previewService == nil {
		return fmt.Errorf("preview service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	format, err := domain.FormatFromPath(path)
	if err != nil {
		return err
	}

	preview, err := previewService.Load(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	cmd.Printf("Name:       %s\n", preview.Name)
	cmd.Printf("Path:       %s\n", preview.Path)
	cmd.Printf("Format:     %s\n", format)
	cmd.Printf("Dimensions: %d x %d\n", preview.Width, preview.Height)
	return nil
}
