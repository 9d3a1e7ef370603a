package mcp

import (
	"context"
	"path/filepath"

	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// mockCoordinator is a mock implementation of driving.Coordinator.
type mockCoordinator struct {
	workspace domain.Workspace
	outcome   domain.ResizeOutcome
	openErr   error

	resized []domain.ResizeRequest
	opened  int
}

func newMockCoordinator() *mockCoordinator {
	return &mockCoordinator{
		workspace: domain.Workspace{HomeDir: "/home/user", OutputDir: "/home/user/imageshrink"},
	}
}

func (m *mockCoordinator) PickFile(_ context.Context) (string, bool, error) {
	return "", false, domain.ErrDialogUnavailable
}

func (m *mockCoordinator) Resize(_ context.Context, req domain.ResizeRequest) domain.ResizeOutcome {
	m.resized = append(m.resized, req)
	if m.outcome.Status != "" {
		return m.outcome
	}
	if err := req.Validate(); err != nil {
		return domain.Failure(req, err.Error())
	}
	return domain.Success(req, filepath.Join(m.workspace.OutputDir, filepath.Base(req.SourcePath)))
}

func (m *mockCoordinator) Submit(_ context.Context, _ domain.ResizeRequest) (string, error) {
	return "id", nil
}

func (m *mockCoordinator) Send(_ context.Context, _ domain.Command) error {
	return nil
}

func (m *mockCoordinator) Events() <-chan domain.Event {
	return nil
}

func (m *mockCoordinator) OpenOutputDirectory(_ context.Context) error {
	m.opened++
	return m.openErr
}

func (m *mockCoordinator) Workspace() domain.Workspace {
	return m.workspace
}

// mockPreviewService is a mock implementation of driving.PreviewService.
type mockPreviewService struct {
	width, height int
	err           error
}

func (m *mockPreviewService) Load(path string) (domain.Preview, error) {
	p := domain.NewPreview(path)
	if m.err != nil {
		return p, m.err
	}
	p.Width, p.Height = m.width, m.height
	return p, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
