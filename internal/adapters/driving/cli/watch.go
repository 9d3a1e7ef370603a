package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/watch"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

var (
	watchWidth  int
	watchHeight int
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Resize every image added to a folder",
	Long: `Watch a folder and resize each image that is created or rewritten in it.

Images are resized one at a time and written to the output folder. The
output folder itself cannot be watched. Stop with ctrl+c.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchWidth, "width", "W", 0, "target width in pixels")
	watchCmd.Flags().IntVarP(&watchHeight, "height", "H", 0, "target height in pixels")
	_ = watchCmd.MarkFlagRequired("width")
	_ = watchCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if coordinator == nil {
		return errNoCoordinator
	}

	w, err := watch.New(coordinator, args[0], watch.Options{
		Width:  watchWidth,
		Height: watchHeight,
		OnOutcome: func(o domain.ResizeOutcome) {
			if o.Succeeded() {
				cmd.Printf("%s -> %s\n", o.Summary(), o.OutputPath)
				return
			}
			cmd.PrintErrln(o.Summary())
		},
	})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (ctrl+c to stop)\n", w.Dir())
	if err := w.Run(cmd.Context()); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
