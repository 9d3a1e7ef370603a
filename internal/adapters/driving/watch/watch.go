// Package watch resizes every image dropped into a folder.
//
// It is a driving adapter over the coordinator: each new or rewritten
// image becomes one resize request, and requests run one at a time.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before it is resized.
const DefaultDebounce = 500 * time.Millisecond

// ErrOutputDirWatched is returned when asked to watch the output directory,
// which would resize its own results forever.
var ErrOutputDirWatched = errors.New("watch: cannot watch the output directory")

// Options configures a Watcher.
type Options struct {
	Width  int
	Height int

	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration

	// OnOutcome is called after each resize. Optional.
	OnOutcome func(domain.ResizeOutcome)
}

// Watcher turns file system events in one directory into resize requests.
type Watcher struct {
	coordinator driving.Coordinator
	dir         string
	opts        Options
}

// New creates a Watcher for dir.
func New(coordinator driving.Coordinator, dir string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	probe := domain.ResizeRequest{SourcePath: abs, Width: opts.Width, Height: opts.Height}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	if filepath.Clean(abs) == filepath.Clean(coordinator.Workspace().OutputDir) {
		return nil, ErrOutputDirWatched
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Watcher{coordinator: coordinator, dir: abs, opts: opts}, nil
}

// Dir returns the absolute watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", w.dir, err)
	}
	logger.Info("watching folder: %s", w.dir)

	deb := newDebouncer(w.opts.Debounce)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if shouldHandle(event) {
				deb.touch(ctx, event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case f := <-deb.ready:
			if deb.take(f) {
				w.process(ctx, f.path)
			}
		}
	}
}

type firing struct {
	path string
	gen  uint64
}

type pending struct {
	timer *time.Timer
	gen   uint64
}

// debouncer delays each path until it has been quiet for delay. Its map is
// only touched by the Run goroutine; timers report back through ready. A
// timer that fired before a newer touch could stop it carries an old
// generation and is dropped by take.
type debouncer struct {
	delay   time.Duration
	ready   chan firing
	pending map[string]pending
	gen     uint64
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		ready:   make(chan firing),
		pending: make(map[string]pending),
	}
}

func (d *debouncer) touch(ctx context.Context, path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.gen++
	f := firing{path: path, gen: d.gen}
	d.pending[path] = pending{
		gen: f.gen,
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.ready <- f:
			case <-ctx.Done():
			}
		}),
	}
}

// take reports whether f is the latest firing for its path and, if so,
// forgets the path.
func (d *debouncer) take(f firing) bool {
	p, ok := d.pending[f.path]
	if !ok || p.gen != f.gen {
		return false
	}
	delete(d.pending, f.path)
	return true
}

func (d *debouncer) stop() {
	for _, p := range d.pending {
		p.timer.Stop()
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	req := domain.ResizeRequest{
		ID:         uuid.NewString(),
		SourcePath: path,
		Width:      w.opts.Width,
		Height:     w.opts.Height,
	}

	logger.Debug("resizing %s", path)
	outcome := w.coordinator.Resize(ctx, req)

	if w.opts.OnOutcome != nil {
		w.opts.OnOutcome(outcome)
	}
}

// shouldHandle accepts created or rewritten images, skipping hidden and
// temporary files.
func shouldHandle(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return domain.IsImagePath(event.Name)
}
