// Package status renders the one-line bar under every TUI view.
package status

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/keymap"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// Bar shows the request state, the chosen file, the output folder and a few
// key hints. It is passive; the App pushes state into it.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     domain.RequestState
	file      string
	outputDir string
	width     int
}

func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: domain.StateIdle, width: 80}
}

func (s *Bar) Init() tea.Cmd { return nil }

func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) { return s, nil }

// View pads between the left and right halves to fill the width.
func (s *Bar) View() string {
	left, right := s.left(), s.hints()
	gap := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) stateLabel() string {
	switch s.state {
	case domain.StateFileChosen:
		return s.styles.Normal.Render("Ready")
	case domain.StateSubmitted:
		return s.styles.Normal.Render("Resizing...")
	case domain.StateSucceeded:
		return s.styles.Success.Render("Done")
	case domain.StateFailed:
		return s.styles.Error.Render("Failed")
	}
	return s.styles.Muted.Render("No image")
}

func (s *Bar) left() string {
	parts := []string{s.stateLabel()}
	if s.file != "" {
		parts = append(parts, s.styles.Normal.Render(filepath.Base(s.file)))
	}
	if s.outputDir != "" {
		parts = append(parts, s.styles.Muted.Render("→ "+s.outputDir))
	}
	return strings.Join(parts, " ")
}

func (s *Bar) hints() string {
	out := make([]string, 0, 3)
	for _, b := range s.keymap.StatusHelp() {
		h := b.Help()
		out = append(out, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(out, " | "))
}

func (s *Bar) SetState(state domain.RequestState) { s.state = state }

func (s *Bar) State() domain.RequestState { return s.state }

// SetFile records the chosen source path; only its base name is shown.
func (s *Bar) SetFile(path string) { s.file = path }

func (s *Bar) SetOutputDir(dir string) { s.outputDir = dir }

func (s *Bar) SetWidth(width int) { s.width = width }

func (s *Bar) Width() int { return s.width }
