// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewResize is the resize form. It is the start view.
	ViewResize ViewType = iota
	// ViewMenu is the main navigation menu.
	ViewMenu
	// ViewPicker is the in-terminal file picker used when no native dialog exists.
	ViewPicker
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewResize:
		return "resize"
	case ViewMenu:
		return "menu"
	case ViewPicker:
		return "picker"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// OpenFileRequested asks the app to show a file picker.
type OpenFileRequested struct{}

// FilePicked carries the result of the native file dialog.
// OK is false when the user cancelled.
type FilePicked struct {
	Path string
	OK   bool
	Err  error
}

// PickerSelected is sent when a file is chosen in the in-terminal picker.
type PickerSelected struct {
	Path string
}

// PickerCancelled is sent when the in-terminal picker is dismissed.
type PickerCancelled struct{}

// PreviewLoaded carries the details of a chosen image.
type PreviewLoaded struct {
	Preview domain.Preview
	Err     error
}

// SubmitRequested carries a validated request from the resize form.
type SubmitRequested struct {
	Request domain.ResizeRequest
}

// ResizeSubmitted reports whether a request reached the coordinator.
type ResizeSubmitted struct {
	Request domain.ResizeRequest
	Err     error
}

// OpenFolderRequested asks the coordinator to open the output directory.
type OpenFolderRequested struct{}

// CoordinatorEvent wraps an event published by the coordinator.
type CoordinatorEvent struct {
	Event domain.Event
}

// EventsClosed is sent when the coordinator's event channel is closed.
type EventsClosed struct{}

// Notify shows a toast.
type Notify struct {
	Text  string
	Error bool
}

// ToastExpired dismisses the toast with the given ID.
type ToastExpired struct {
	ID int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
