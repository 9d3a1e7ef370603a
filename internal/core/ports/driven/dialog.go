package driven

import "context"

// FileDialog opens a native single-file picker.
type FileDialog interface {
	// OpenFile shows the picker restricted to the given extensions (no dot).
	// ok is false when the user cancelled.
	OpenFile(ctx context.Context, title string, extensions []string) (path string, ok bool, err error)
}

// Shell hands paths to the platform's default handler.
type Shell interface {
	// OpenPath opens path (a file or directory) without waiting for the handler.
	OpenPath(path string) error
}
