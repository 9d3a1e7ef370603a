package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/core/ports/driving"
)

// MockCoordinator is a mock implementation of driving.Coordinator.
type MockCoordinator struct {
	mu        sync.Mutex
	events    chan domain.Event
	submitted []domain.ResizeRequest
	sent      []domain.Command
	workspace domain.Workspace

	PickPath string
	PickOK   bool
	PickErr  error

	SubmitErr error
	SendErr   error
}

var _ driving.Coordinator = (*MockCoordinator)(nil)

func NewMockCoordinator() *MockCoordinator {
	return &MockCoordinator{
		events: make(chan domain.Event, 8),
		workspace: domain.Workspace{
			HomeDir:   "/home/user",
			OutputDir: "/home/user/imageshrink",
		},
	}
}

func (m *MockCoordinator) PickFile(_ context.Context) (string, bool, error) {
	return m.PickPath, m.PickOK, m.PickErr
}

func (m *MockCoordinator) Resize(_ context.Context, req domain.ResizeRequest) domain.ResizeOutcome {
	return domain.Success(req, m.workspace.OutputPath("out.png"))
}

func (m *MockCoordinator) Submit(_ context.Context, req domain.ResizeRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubmitErr != nil {
		return "", m.SubmitErr
	}
	m.submitted = append(m.submitted, req)
	return req.ID, nil
}

func (m *MockCoordinator) Send(_ context.Context, cmd domain.Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.sent = append(m.sent, cmd)
	return nil
}

func (m *MockCoordinator) Events() <-chan domain.Event {
	return m.events
}

func (m *MockCoordinator) OpenOutputDirectory(_ context.Context) error {
	return nil
}

func (m *MockCoordinator) Workspace() domain.Workspace {
	return m.workspace
}

func (m *MockCoordinator) Submitted() []domain.ResizeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ResizeRequest(nil), m.submitted...)
}

func (m *MockCoordinator) Sent() []domain.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Command(nil), m.sent...)
}

// MockPreviewService is a mock implementation of driving.PreviewService.
type MockPreviewService struct {
	Width  int
	Height int
	Err    error
}

var _ driving.PreviewService = (*MockPreviewService)(nil)

func (m *MockPreviewService) Load(path string) (domain.Preview, error) {
	p := domain.NewPreview(path)
	if m.Err != nil {
		return p, m.Err
	}
	p.Width = m.Width
	p.Height = m.Height
	return p, nil
}

var errMock = errors.New("mock error")
