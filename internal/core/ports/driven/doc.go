// Package driven lists what the core needs from the outside world.
//
// FileSystem, ImageResizer, ImageInspector and ConfigStore must be provided.
// FileDialog and Shell may be nil: PickFile then reports
// domain.ErrDialogUnavailable and opening a folder does nothing.
//
// Adapters import this package and domain; this package imports nothing from
// internal/adapters.
package driven
