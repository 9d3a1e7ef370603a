package driving

import (
	"context"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// Coordinator owns filesystem access and runs resize requests.
type Coordinator interface {
	// PickFile opens the native file dialog filtered to image extensions.
	// ok is false when the user cancelled.
	PickFile(ctx context.Context) (path string, ok bool, err error)

	// Resize runs req to completion and returns its outcome.
	// It never returns an error; failures are reported in the outcome.
	Resize(ctx context.Context, req domain.ResizeRequest) domain.ResizeOutcome

	// Submit queues req and returns its ID. The outcome arrives later as
	// an EventResizeDone or EventResizeError on Events.
	Submit(ctx context.Context, req domain.ResizeRequest) (string, error)

	// Send queues a fire-and-forget command.
	Send(ctx context.Context, cmd domain.Command) error

	// Events returns the coordinator's event channel.
	Events() <-chan domain.Event

	// OpenOutputDirectory opens the output directory in the platform file browser.
	OpenOutputDirectory(ctx context.Context) error

	// Workspace returns the coordinator's workspace.
	Workspace() domain.Workspace
}
