// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
)

// DimensionInput is a labelled single-line input for a pixel size.
// It accepts any text; the form validates on submit.
type DimensionInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewDimensionInput creates an unfocused input with the given label.
func NewDimensionInput(s *styles.Styles, label string) *DimensionInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "pixels"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = ""

	return &DimensionInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the input.
func (d *DimensionInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DimensionInput) Update(msg tea.Msg) (*DimensionInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the label and input.
func (d *DimensionInput) View() string {
	field := d.styles.InputField
	if d.textinput.Focused() {
		field = d.styles.FocusedField
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center,
		d.styles.Label.Render(d.label),
		field.Render(d.textinput.View()),
	)
}

// Label returns the field label.
func (d *DimensionInput) Label() string {
	return d.label
}

// Value returns the current input value.
func (d *DimensionInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DimensionInput) SetValue(value string) {
	d.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (d *DimensionInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DimensionInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DimensionInput) Focused() bool {
	return d.textinput.Focused()
}

// Reset clears the input.
func (d *DimensionInput) Reset() {
	d.textinput.Reset()
}
