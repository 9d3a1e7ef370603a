package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/resizer"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driven/storage/memory"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

const (
	testHome   = "/home/user"
	testSource = "/home/user/pictures/photo.png"
)

func newTestWorkspace(t *testing.T) domain.Workspace {
	t.Helper()
	ws, err := domain.NewWorkspace(testHome, "imageshrink")
	require.NoError(t, err)
	return ws
}

func newTestCoordinator(t *testing.T) (*Coordinator, *memory.FileSystem, *mockResizer) {
	t.Helper()
	fs := memory.NewFileSystem()
	fs.AddDir(testHome)
	fs.AddFile(testSource, []byte("pixels"))
	rs := &mockResizer{}
	return NewCoordinator(newTestWorkspace(t), fs, rs, nil, nil), fs, rs
}

func startCoordinator(t *testing.T, c *Coordinator) {
	t.Helper()
	require.NoError(t, c.Start(context.Background()))
	t.Cleanup(c.Stop)
}

func nextEvent(t *testing.T, c *Coordinator) domain.Event {
	t.Helper()
	select {
	case ev, ok := <-c.Events():
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return domain.Event{}
	}
}

func assertNoEvent(t *testing.T, c *Coordinator) {
	t.Helper()
	select {
	case ev := <-c.Events():
		t.Fatalf("unexpected event %s", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ==================== Resize ====================

func TestCoordinator_Resize_WritesOneFile(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	req := domain.ResizeRequest{ID: "r1", SourcePath: testSource, Width: 200, Height: 150}

	outcome := c.Resize(context.Background(), req)

	require.True(t, outcome.Succeeded(), outcome.Message)
	want := filepath.Join(testHome, "imageshrink", "photo.png")
	assert.Equal(t, want, outcome.OutputPath)
	assert.Equal(t, []string{want}, fs.FilesIn(filepath.Join(testHome, "imageshrink")))
	data, _ := fs.File(want)
	assert.Equal(t, []byte("resized:pixels"), data)
	assert.Equal(t, "r1", outcome.RequestID)
}

func TestCoordinator_Resize_CreatesMissingOutputDir(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	outDir := filepath.Join(testHome, "imageshrink")
	require.False(t, fs.HasDir(outDir))

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 10, Height: 10})

	require.True(t, outcome.Succeeded())
	assert.True(t, fs.HasDir(outDir))
	assert.Len(t, fs.FilesIn(outDir), 1)
}

func TestCoordinator_Resize_SameRequestTwiceOverwrites(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	req := domain.ResizeRequest{SourcePath: testSource, Width: 10, Height: 10}

	first := c.Resize(context.Background(), req)
	second := c.Resize(context.Background(), req)

	require.True(t, first.Succeeded())
	require.True(t, second.Succeeded())
	assert.Equal(t, first.OutputPath, second.OutputPath)
	assert.Len(t, fs.FilesIn(filepath.Join(testHome, "imageshrink")), 1)
	assert.Equal(t, 2, fs.Writes())
}

func TestCoordinator_Resize_EmptySourceTouchesNothing(t *testing.T) {
	c, fs, rs := newTestCoordinator(t)

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: "", Width: 10, Height: 10})

	assert.False(t, outcome.Succeeded())
	assert.Equal(t, "no source image provided", outcome.Message)
	assert.Equal(t, 0, fs.Calls())
	assert.Equal(t, 0, rs.Calls())
}

func TestCoordinator_Resize_InvalidDimensionsTouchNothing(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)

	for _, req := range []domain.ResizeRequest{
		{SourcePath: testSource, Width: 0, Height: 10},
		{SourcePath: testSource, Width: 10, Height: -5},
	} {
		outcome := c.Resize(context.Background(), req)
		assert.False(t, outcome.Succeeded())
		assert.Contains(t, outcome.Message, "must be greater than zero")
	}
	assert.Equal(t, 0, fs.Calls())
}

func TestCoordinator_Resize_UnsupportedFormat(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: "/home/user/notes.txt", Width: 1, Height: 1})

	assert.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Message, "unsupported image format")
	assert.Equal(t, 0, fs.Writes())
}

func TestCoordinator_Resize_MissingSourceFile(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: "/home/user/gone.png", Width: 1, Height: 1})

	assert.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Message, "gone.png")
	assert.Equal(t, 0, fs.Writes())
}

func TestCoordinator_Resize_PropagatesFailureText(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memory.FileSystem, *mockResizer)
	}{
		{name: "resizer", setup: func(_ *memory.FileSystem, rs *mockResizer) { rs.err = errMock }},
		{name: "mkdir", setup: func(fs *memory.FileSystem, _ *mockResizer) { fs.MkdirErr = errMock }},
		{name: "write", setup: func(fs *memory.FileSystem, _ *mockResizer) { fs.WriteErr = errMock }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fs, rs := newTestCoordinator(t)
			tt.setup(fs, rs)

			outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 5, Height: 5})

			assert.False(t, outcome.Succeeded())
			assert.Equal(t, "mock failure", outcome.Message)
			assert.Equal(t, "Error: mock failure", outcome.Summary())
		})
	}
}

func TestCoordinator_Resize_RecoversPanic(t *testing.T) {
	c, _, rs := newTestCoordinator(t)
	rs.shouldPanic = true

	var outcome domain.ResizeOutcome
	assert.NotPanics(t, func() {
		outcome = c.Resize(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 5, Height: 5})
	})
	assert.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Message, "decoder exploded")
}

func TestCoordinator_Resize_WebPWrittenAsPNG(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	fs.AddFile("/home/user/pic.webp", []byte("webp"))

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: "/home/user/pic.webp", Width: 5, Height: 5})

	require.True(t, outcome.Succeeded())
	assert.Equal(t, filepath.Join(testHome, "imageshrink", "pic.png"), outcome.OutputPath)
}

func TestCoordinator_Resize_RealImage(t *testing.T) {
	fs := memory.NewFileSystem()
	fs.AddDir(testHome)
	fs.AddFile(testSource, encodePNG(t, 800, 600))
	c := NewCoordinator(newTestWorkspace(t), fs, resizer.NewResizer(domain.FilterLanczos, 95), nil, nil)

	outcome := c.Resize(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 200, Height: 150})

	require.True(t, outcome.Succeeded(), outcome.Message)
	assert.Equal(t, "Image resized to 200 x 150 successfully!", outcome.Summary())
	data, ok := fs.File(filepath.Join(testHome, "imageshrink", "photo.png"))
	require.True(t, ok)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 150, cfg.Height)
}

// ==================== Command loop ====================

func TestCoordinator_Submit_EmitsOneTerminalEvent(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	startCoordinator(t, c)

	id, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 20, Height: 10})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	ev := nextEvent(t, c)
	assert.Equal(t, domain.EventResizeDone, ev.Kind)
	assert.Equal(t, id, ev.RequestID)
	assert.Equal(t, 20, ev.Outcome.Width)
	assertNoEvent(t, c)
	assert.Equal(t, 1, fs.Writes())
}

func TestCoordinator_Submit_KeepsCallerID(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	startCoordinator(t, c)

	id, err := c.Submit(context.Background(), domain.ResizeRequest{ID: "mine", SourcePath: testSource, Width: 1, Height: 1})

	require.NoError(t, err)
	assert.Equal(t, "mine", id)
	assert.Equal(t, "mine", nextEvent(t, c).RequestID)
}

func TestCoordinator_Submit_FailureEmitsErrorEvent(t *testing.T) {
	c, fs, _ := newTestCoordinator(t)
	startCoordinator(t, c)

	_, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: "", Width: 1, Height: 1})
	require.NoError(t, err)

	ev := nextEvent(t, c)
	assert.Equal(t, domain.EventResizeError, ev.Kind)
	assert.Equal(t, "no source image provided", ev.Outcome.Message)
	assertNoEvent(t, c)
	assert.Equal(t, 0, fs.Calls())
}

func TestCoordinator_OpenAfterResize(t *testing.T) {
	fs := memory.NewFileSystem()
	fs.AddDir(testHome)
	fs.AddFile(testSource, []byte("x"))
	shell := newMockShell()
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, nil, shell)
	c.SetOpenAfterResize(true)
	startCoordinator(t, c)

	_, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 1, Height: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.EventResizeDone, nextEvent(t, c).Kind)
	select {
	case opened := <-shell.notify:
		assert.Equal(t, filepath.Join(testHome, "imageshrink"), opened)
	case <-time.After(2 * time.Second):
		t.Fatal("output directory was not opened")
	}
}

func TestCoordinator_NoOpenAfterFailure(t *testing.T) {
	fs := memory.NewFileSystem()
	shell := newMockShell()
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, nil, shell)
	c.SetOpenAfterResize(true)
	startCoordinator(t, c)

	_, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: "", Width: 1, Height: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.EventResizeError, nextEvent(t, c).Kind)
	c.Stop()
	assert.Empty(t, shell.Opened())
}

func TestCoordinator_SelectFileBroadcasts(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	startCoordinator(t, c)

	require.NoError(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandSelectFile, Path: testSource}))

	ev := nextEvent(t, c)
	assert.Equal(t, domain.EventFileSelected, ev.Kind)
	assert.Equal(t, testSource, ev.Path)
}

func TestCoordinator_OpenFileDialogCommand(t *testing.T) {
	fs := memory.NewFileSystem()
	dialog := &mockDialog{path: testSource, ok: true}
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, dialog, nil)
	startCoordinator(t, c)

	require.NoError(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandOpenFileDialog}))

	ev := nextEvent(t, c)
	assert.Equal(t, domain.EventFileSelected, ev.Kind)
	assert.Equal(t, testSource, ev.Path)
}

func TestCoordinator_OpenFileDialogCommand_CancelEmitsNothing(t *testing.T) {
	c := NewCoordinator(newTestWorkspace(t), memory.NewFileSystem(), &mockResizer{}, &mockDialog{ok: false}, nil)
	startCoordinator(t, c)

	require.NoError(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandOpenFileDialog}))

	assertNoEvent(t, c)
}

func TestCoordinator_LoopAcceptsCommandsDuringResize(t *testing.T) {
	c, _, rs := newTestCoordinator(t)
	rs.block = make(chan struct{})
	startCoordinator(t, c)

	_, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 1, Height: 1})
	require.NoError(t, err)
	require.NoError(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandSelectFile, Path: "/other.png"}))

	assert.Equal(t, domain.EventFileSelected, nextEvent(t, c).Kind)
	close(rs.block)
	assert.Equal(t, domain.EventResizeDone, nextEvent(t, c).Kind)
}

func TestCoordinator_OpenOutputDirCommand(t *testing.T) {
	fs := memory.NewFileSystem()
	fs.AddDir(testHome)
	shell := newMockShell()
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, nil, shell)
	startCoordinator(t, c)

	require.NoError(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandOpenOutputDir}))

	select {
	case opened := <-shell.notify:
		assert.Equal(t, filepath.Join(testHome, "imageshrink"), opened)
	case <-time.After(2 * time.Second):
		t.Fatal("output directory was not opened")
	}
	assert.True(t, fs.HasDir(filepath.Join(testHome, "imageshrink")))
}

// ==================== Lifecycle ====================

func TestCoordinator_SendBeforeStart(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	err := c.Send(context.Background(), domain.Command{Kind: domain.CommandSelectFile})

	assert.ErrorIs(t, err, domain.ErrCoordinatorStopped)
}

func TestCoordinator_StopClosesEvents(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	require.NoError(t, c.Start(context.Background()))

	c.Stop()

	_, open := <-c.Events()
	assert.False(t, open)
	assert.ErrorIs(t, c.Send(context.Background(), domain.Command{Kind: domain.CommandSelectFile}), domain.ErrCoordinatorStopped)
	_, err := c.Submit(context.Background(), domain.ResizeRequest{SourcePath: testSource, Width: 1, Height: 1})
	assert.ErrorIs(t, err, domain.ErrCoordinatorStopped)
	assert.ErrorIs(t, c.Start(context.Background()), domain.ErrCoordinatorStopped)

	assert.NotPanics(t, c.Stop)
}

func TestCoordinator_StartTwice(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	startCoordinator(t, c)

	assert.Error(t, c.Start(context.Background()))
}

func TestCoordinator_StopWithoutStart(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	c.Stop()

	_, open := <-c.Events()
	assert.False(t, open)
}

// ==================== PickFile ====================

func TestCoordinator_PickFile(t *testing.T) {
	dialog := &mockDialog{path: testSource, ok: true}
	c := NewCoordinator(newTestWorkspace(t), memory.NewFileSystem(), &mockResizer{}, dialog, nil)

	path, ok, err := c.PickFile(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testSource, path)
	assert.Equal(t, domain.ImageExtensions, dialog.extensions)
	assert.NotEmpty(t, dialog.title)
}

func TestCoordinator_PickFile_Cancelled(t *testing.T) {
	fs := memory.NewFileSystem()
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, &mockDialog{ok: false}, nil)

	path, ok, err := c.PickFile(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
	assert.Equal(t, 0, fs.Calls())
}

func TestCoordinator_PickFile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		dialog *mockDialog
		target error
	}{
		{name: "no dialog", dialog: nil, target: domain.ErrDialogUnavailable},
		{name: "dialog error", dialog: &mockDialog{err: errMock}, target: errMock},
		{name: "not an image", dialog: &mockDialog{path: "/home/user/notes.txt", ok: true}, target: domain.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinator(newTestWorkspace(t), memory.NewFileSystem(), &mockResizer{}, nil, nil)
			if tt.dialog != nil {
				c.dialog = tt.dialog
			}

			_, ok, err := c.PickFile(context.Background())

			assert.ErrorIs(t, err, tt.target)
			assert.False(t, ok)
		})
	}
}

// ==================== OpenOutputDirectory ====================

func TestCoordinator_OpenOutputDirectory_NoShell(t *testing.T) {
	fs := memory.NewFileSystem()
	fs.AddDir(testHome)
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, nil, nil)

	assert.NoError(t, c.OpenOutputDirectory(context.Background()))
	assert.True(t, fs.HasDir(filepath.Join(testHome, "imageshrink")))
}

func TestCoordinator_OpenOutputDirectory_MkdirFails(t *testing.T) {
	fs := memory.NewFileSystem()
	fs.MkdirErr = errMock
	shell := newMockShell()
	c := NewCoordinator(newTestWorkspace(t), fs, &mockResizer{}, nil, shell)

	err := c.OpenOutputDirectory(context.Background())

	assert.ErrorIs(t, err, errMock)
	assert.Empty(t, shell.Opened())
}
