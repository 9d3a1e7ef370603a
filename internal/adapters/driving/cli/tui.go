package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

var errNotTerminal = errors.New("the interactive UI needs a terminal; use 'imageshrink resize' instead")

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for imageshrink.

Controls:
  ctrl+o     - Choose an image
  tab        - Switch between width and height
  enter      - Resize
  ctrl+f     - Open the output folder
  esc        - Menu
  ctrl+c     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if coordinator == nil {
		return errNoCoordinator
	}
	if !isTerminal() {
		return errNotTerminal
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	// Keep log lines off the alt screen
	if logPath != "" {
		closer, logErr := logger.ToFile(logPath)
		if logErr != nil {
			return fmt.Errorf("opening log file: %w", logErr)
		}
		defer func() {
			logger.SetOutput(os.Stderr)
			closer.Close()
		}()
	}

	if runner != nil {
		if err := runner.Start(cmd.Context()); err != nil {
			return fmt.Errorf("starting coordinator: %w", err)
		}
		defer runner.Stop()
	}

	app, err := tui.NewApp(&tui.Ports{
		Coordinator: coordinator,
		Preview:     previewService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
