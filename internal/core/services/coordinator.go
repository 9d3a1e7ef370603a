package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

// Ensure Coordinator implements the interface.
var _ driving.Coordinator = (*Coordinator)(nil)

const (
	commandBuffer = 8
	eventBuffer   = 16
	dialogTitle   = "Select an image"
)

// Coordinator owns filesystem access and runs resize requests.
//
// It runs a single command loop. Each resize runs on its own goroutine so
// the loop keeps accepting unrelated commands, such as a file selection,
// while a request is in progress. Requests are not serialised against each
// other; UI surfaces keep at most one in flight.
type Coordinator struct {
	workspace domain.Workspace
	fs        driven.FileSystem
	resizer   driven.ImageResizer
	dialog    driven.FileDialog
	shell     driven.Shell

	commands chan domain.Command
	events   chan domain.Event

	mu              sync.Mutex
	openAfterResize bool
	running         bool
	stopped         bool
	cancel          context.CancelFunc
	done            chan struct{}
	wg              sync.WaitGroup
}

// NewCoordinator creates a coordinator for the given workspace.
// dialog and shell are optional.
func NewCoordinator(
	workspace domain.Workspace,
	fs driven.FileSystem,
	resizer driven.ImageResizer,
	dialog driven.FileDialog,
	shell driven.Shell,
) *Coordinator {
	return &Coordinator{
		workspace: workspace,
		fs:        fs,
		resizer:   resizer,
		dialog:    dialog,
		shell:     shell,
		commands:  make(chan domain.Command, commandBuffer),
		events:    make(chan domain.Event, eventBuffer),
	}
}

// SetOpenAfterResize controls whether a successful request queued through
// Submit also opens the output directory.
func (c *Coordinator) SetOpenAfterResize(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openAfterResize = open
}

// Workspace returns the coordinator's workspace.
func (c *Coordinator) Workspace() domain.Workspace {
	return c.workspace
}

// Events returns the coordinator's event channel.
// The channel is closed by Stop.
func (c *Coordinator) Events() <-chan domain.Event {
	return c.events
}

// Start runs the command loop until ctx is cancelled or Stop is called.
// A stopped coordinator cannot be restarted.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return domain.ErrCoordinatorStopped
	}
	if c.running {
		return errors.New("coordinator already running")
	}

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	go c.loop(loopCtx, c.done)
	logger.Debug("coordinator started, output directory %s", c.workspace.OutputDir)
	return nil
}

// Stop cancels the command loop, waits for in-flight work and closes Events.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if !c.running {
		if !c.stopped {
			c.stopped = true
			close(c.events)
		}
		c.mu.Unlock()
		return
	}
	c.running = false
	c.stopped = true
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done
	c.wg.Wait()
	close(c.events)
	logger.Debug("coordinator stopped")
}

// Send queues a fire-and-forget command.
func (c *Coordinator) Send(ctx context.Context, cmd domain.Command) error {
	c.mu.Lock()
	running, done := c.running, c.done
	c.mu.Unlock()

	if !running {
		return domain.ErrCoordinatorStopped
	}

	select {
	case c.commands <- cmd:
		return nil
	case <-done:
		return domain.ErrCoordinatorStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit queues req and returns its ID.
func (c *Coordinator) Submit(ctx context.Context, req domain.ResizeRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := c.Send(ctx, domain.Command{Kind: domain.CommandResizeImage, Request: req}); err != nil {
		return "", err
	}
	return req.ID, nil
}

func (c *Coordinator) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			c.handle(ctx, cmd)
		}
	}
}

// handle dispatches one command. Anything that may block runs on its own
// goroutine.
func (c *Coordinator) handle(ctx context.Context, cmd domain.Command) {
	logger.Debug("command %s", cmd.Kind)

	switch cmd.Kind {
	case domain.CommandSelectFile:
		c.publish(ctx, domain.Event{Kind: domain.EventFileSelected, Path: cmd.Path})

	case domain.CommandOpenFileDialog:
		c.spawn(func() {
			path, ok, err := c.PickFile(ctx)
			if err != nil {
				logger.Warn("file dialog: %v", err)
				return
			}
			if ok {
				c.publish(ctx, domain.Event{Kind: domain.EventFileSelected, Path: path})
			}
		})

	case domain.CommandResizeImage:
		req := cmd.Request
		c.spawn(func() {
			outcome := c.Resize(ctx, req)
			c.publish(ctx, domain.EventForOutcome(outcome))
			if outcome.Succeeded() && c.shouldOpenAfterResize() {
				if err := c.OpenOutputDirectory(ctx); err != nil {
					logger.Warn("open output directory: %v", err)
				}
			}
		})

	case domain.CommandOpenOutputDir:
		c.spawn(func() {
			if err := c.OpenOutputDirectory(ctx); err != nil {
				logger.Warn("open output directory: %v", err)
			}
		})

	default:
		logger.Warn("ignoring unknown command %q", cmd.Kind)
	}
}

func (c *Coordinator) spawn(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

func (c *Coordinator) publish(ctx context.Context, ev domain.Event) {
	select {
	case c.events <- ev:
	case <-ctx.Done():
		logger.Debug("dropping %s event during shutdown", ev.Kind)
	}
}

func (c *Coordinator) shouldOpenAfterResize() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openAfterResize
}

// PickFile opens the native file dialog filtered to image extensions.
func (c *Coordinator) PickFile(ctx context.Context) (string, bool, error) {
	if c.dialog == nil {
		return "", false, domain.ErrDialogUnavailable
	}

	path, ok, err := c.dialog.OpenFile(ctx, dialogTitle, domain.ImageExtensions)
	if err != nil {
		return "", false, err
	}
	if !ok || path == "" {
		logger.Debug("file dialog cancelled")
		return "", false, nil
	}
	if !domain.IsImagePath(path) {
		return "", false, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrUnsupportedFormat)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, true, nil
}

// Resize reads the source, resizes it and writes the result to the output
// directory, replacing any file of the same name. Failures are logged and
// returned as a failed outcome carrying the underlying message.
func (c *Coordinator) Resize(ctx context.Context, req domain.ResizeRequest) (outcome domain.ResizeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("resize %s: panic: %v", req.SourcePath, r)
			outcome = domain.Failure(req, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	if strings.TrimSpace(req.SourcePath) == "" {
		logger.Error("resize request %s: no file path provided", req.ID)
		return domain.Failure(req, domain.ErrMissingInput.Error())
	}
	if err := req.Validate(); err != nil {
		return c.fail(req, err)
	}

	format, err := domain.FormatFromPath(req.SourcePath)
	if err != nil {
		return c.fail(req, fmt.Errorf("%s: %w", filepath.Base(req.SourcePath), err))
	}

	data, err := c.fs.ReadFile(req.SourcePath)
	if err != nil {
		return c.fail(req, err)
	}

	img, err := c.resizer.Resize(ctx, data, format, req.Width, req.Height)
	if err != nil {
		return c.fail(req, err)
	}

	if err := c.fs.EnsureDir(c.workspace.OutputDir); err != nil {
		return c.fail(req, err)
	}

	outputPath := c.workspace.OutputPath(domain.OutputName(req.SourcePath, img.Format))
	if err := c.fs.WriteFile(outputPath, img.Data); err != nil {
		return c.fail(req, err)
	}

	logger.Info("resized %s to %dx%d -> %s", req.SourcePath, req.Width, req.Height, outputPath)
	return domain.Success(req, outputPath)
}

func (c *Coordinator) fail(req domain.ResizeRequest, err error) domain.ResizeOutcome {
	logger.Error("resize %s: %v", req.SourcePath, err)
	return domain.Failure(req, err.Error())
}

// OpenOutputDirectory creates the output directory if needed and opens it
// in the platform file browser.
func (c *Coordinator) OpenOutputDirectory(_ context.Context) error {
	if err := c.fs.EnsureDir(c.workspace.OutputDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if c.shell == nil {
		logger.Warn("no shell configured, not opening %s", c.workspace.OutputDir)
		return nil
	}
	return c.shell.OpenPath(c.workspace.OutputDir)
}
