package services

import (
	"context"
	"errors"
	"sync"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driven"
)

// mockResizer echoes a tagged payload, fails or panics on demand.
type mockResizer struct {
	mu          sync.Mutex
	calls       int
	err         error
	shouldPanic bool
	// block, when set, is waited on before returning.
	block chan struct{}
}

func (m *mockResizer) Resize(
	_ context.Context,
	data []byte,
	format domain.ImageFormat,
	width, height int,
) (driven.EncodedImage, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	if m.shouldPanic {
		panic("decoder exploded")
	}
	if m.err != nil {
		return driven.EncodedImage{}, m.err
	}
	out := format
	if format.IsDecodeOnly() {
		out = domain.FormatPNG
	}
	return driven.EncodedImage{Data: append([]byte("resized:"), data...), Format: out}, nil
}

func (m *mockResizer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockDialog struct {
	path string
	ok   bool
	err  error

	title      string
	extensions []string
}

func (m *mockDialog) OpenFile(_ context.Context, title string, extensions []string) (string, bool, error) {
	m.title = title
	m.extensions = extensions
	return m.path, m.ok, m.err
}

type mockShell struct {
	mu     sync.Mutex
	opened []string
	err    error
	notify chan string
}

func newMockShell() *mockShell {
	return &mockShell{notify: make(chan string, 4)}
}

func (m *mockShell) OpenPath(path string) error {
	m.mu.Lock()
	m.opened = append(m.opened, path)
	m.mu.Unlock()
	m.notify <- path
	return m.err
}

func (m *mockShell) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

type mockInspector struct {
	width, height int
	err           error
}

func (m *mockInspector) Dimensions(_ string) (int, int, error) {
	return m.width, m.height, m.err
}

var errMock = errors.New("mock failure")
