package domain

// CommandKind identifies a message sent to the coordinator.
type CommandKind string

// Command kinds.
const (
	// CommandOpenFileDialog opens the native picker and broadcasts the choice.
	CommandOpenFileDialog CommandKind = "open-file-dialog"

	// CommandSelectFile broadcasts an already chosen path as a file-selected event.
	CommandSelectFile CommandKind = "select-file"

	// CommandResizeImage runs one resize request.
	CommandResizeImage CommandKind = "resize-image"

	// CommandOpenOutputDir opens the output directory in the platform file browser.
	CommandOpenOutputDir CommandKind = "open-output-dir"
)

// Command is a fire-and-forget message to the coordinator.
type Command struct {
	Kind    CommandKind
	Path    string
	Request ResizeRequest
}

// EventKind identifies a message published by the coordinator.
type EventKind string

// Event kinds.
const (
	EventFileSelected EventKind = "file-selected"
	EventResizeDone   EventKind = "resize-done"
	EventResizeError  EventKind = "resize-error"
)

// Event is published by the coordinator to its UI surface.
type Event struct {
	Kind      EventKind
	RequestID string

	// Path is set for EventFileSelected.
	Path string

	// Outcome is set for EventResizeDone and EventResizeError.
	Outcome ResizeOutcome
}

// EventForOutcome wraps an outcome in the matching terminal event.
func EventForOutcome(o ResizeOutcome) Event {
	kind := EventResizeError
	if o.Succeeded() {
		kind = EventResizeDone
	}
	return Event{Kind: kind, RequestID: o.RequestID, Outcome: o}
}

// IsTerminal returns true for events that end a resize request.
func (e Event) IsTerminal() bool {
	return e.Kind == EventResizeDone || e.Kind == EventResizeError
}
