package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

var (
	resizeWidth  int
	resizeHeight int
	resizeNoOpen bool
	resizeJSON   bool
)

var resizeCmd = &cobra.Command{
	Use:   "resize [path]",
	Short: "Resize an image",
	Long: `Resize an image to an exact width and height.

The result is written to the output folder with the same file name as the
source, replacing any earlier result. The aspect ratio is not preserved.`,
	Example: `  imageshrink resize ~/Pictures/photo.png -W 200 -H 150`,
	Args:    cobra.ExactArgs(1),
	RunE:    runResize,
}

func init() {
	resizeCmd.Flags().IntVarP(&resizeWidth, "width", "W", 0, "target width in pixels")
	resizeCmd.Flags().IntVarP(&resizeHeight, "height", "H", 0, "target height in pixels")
	resizeCmd.Flags().BoolVar(&resizeNoOpen, "no-open", false, "do not open the output folder afterwards")
	resizeCmd.Flags().BoolVar(&resizeJSON, "json", false, "output the result as JSON")
	_ = resizeCmd.MarkFlagRequired("width")
	_ = resizeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(resizeCmd)
}

// resizeResult is the JSON form of an outcome.
type resizeResult struct {
	ID         string `json:"id"`
	Succeeded  bool   `json:"succeeded"`
	Message    string `json:"message"`
	OutputPath string `json:"output_path,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func runResize(cmd *cobra.Command, args []string) error {
	if coordinator == nil {
		return errNoCoordinator
	}

	source, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	req := domain.ResizeRequest{
		ID:         uuid.NewString(),
		SourcePath: source,
		Width:      resizeWidth,
		Height:     resizeHeight,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	outcome := coordinator.Resize(cmd.Context(), req)

	if resizeJSON {
		if err := outputResizeJSON(cmd, outcome); err != nil {
			return err
		}
	} else {
		cmd.Println(outcome.Summary())
		if outcome.Succeeded() {
			cmd.Printf("Saved to %s\n", outcome.OutputPath)
		}
	}

	if !outcome.Succeeded() {
		return fmt.Errorf("resize failed: %s", outcome.Message)
	}

	if shouldOpenAfterResize() {
		if err := coordinator.OpenOutputDirectory(cmd.Context()); err != nil {
			logger.Warn("opening output folder: %v", err)
		}
	}
	return nil
}

func shouldOpenAfterResize() bool {
	return openAfterResize && !resizeNoOpen && !resizeJSON
}

func outputResizeJSON(cmd *cobra.Command, outcome domain.ResizeOutcome) error {
	result := resizeResult{
		ID:         outcome.RequestID,
		Succeeded:  outcome.Succeeded(),
		Message:    outcome.Summary(),
		OutputPath: outcome.OutputPath,
		Width:      outcome.Width,
		Height:     outcome.Height,
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
