// Package toast provides a transient notification component for the TUI.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 5 * time.Second

// Kind selects the toast styling.
type Kind int

// Toast kinds.
const (
	KindSuccess Kind = iota
	KindError
)

// Model shows at most one notification. A newer toast replaces an older one;
// the older toast's expiry is then ignored.
type Model struct {
	styles   *styles.Styles
	duration time.Duration

	id      int
	text    string
	kind    Kind
	visible bool
}

// New creates a toast component.
func New(s *styles.Styles, duration time.Duration) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Model{styles: s, duration: duration}
}

// Show displays text and returns the command that dismisses it.
func (m *Model) Show(text string, kind Kind) tea.Cmd {
	m.id++
	m.text = text
	m.kind = kind
	m.visible = true

	id := m.id
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return messages.ToastExpired{ID: id}
	})
}

// Update hides the toast when its own expiry arrives.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if expired, ok := msg.(messages.ToastExpired); ok && expired.ID == m.id {
		m.visible = false
	}
	return m, nil
}

// View renders the toast, or nothing when hidden.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	if m.kind == KindError {
		return m.styles.ToastError.Render(m.text)
	}
	return m.styles.ToastSuccess.Render(m.text)
}

// Visible returns whether a toast is showing.
func (m *Model) Visible() bool {
	return m.visible
}

// Text returns the current toast text.
func (m *Model) Text() string {
	return m.text
}

// Kind returns the current toast kind.
func (m *Model) Kind() Kind {
	return m.kind
}

// ID returns the current toast ID.
func (m *Model) ID() int {
	return m.id
}
