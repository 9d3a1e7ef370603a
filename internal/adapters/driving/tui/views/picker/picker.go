// Package picker provides an in-terminal image picker. The app shows it
// when no native file dialog is available.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// View wraps a bubbles file picker restricted to image extensions.
type View struct {
	styles *styles.Styles
	picker filepicker.Model
	notice string
}

// NewView creates a picker rooted at startDir.
func NewView(s *styles.Styles, startDir string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fp := filepicker.New()
	fp.AllowedTypes = AllowedTypes()
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	if startDir != "" {
		fp.CurrentDirectory = startDir
	}

	return &View{styles: s, picker: fp}
}

// AllowedTypes returns the picker's extension filter with leading dots, in
// lower and upper case; the filepicker compares suffixes case-sensitively.
func AllowedTypes() []string {
	types := make([]string, 0, 2*len(domain.ImageExtensions))
	for _, ext := range domain.ImageExtensions {
		types = append(types, "."+strings.ToLower(ext))
	}
	for _, ext := range domain.ImageExtensions {
		types = append(types, "."+strings.ToUpper(ext))
	}
	return types
}

// Init reads the start directory.
func (v *View) Init() tea.Cmd {
	v.notice = ""
	return v.picker.Init()
}

// Update forwards messages to the file picker. Esc cancels; selecting an
// image sends PickerSelected.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return v, func() tea.Msg { return messages.PickerCancelled{} }
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if didSelect, path := v.picker.DidSelectFile(msg); didSelect {
		return v, func() tea.Msg { return messages.PickerSelected{Path: path} }
	}
	if didSelect, path := v.picker.DidSelectDisabledFile(msg); didSelect {
		v.notice = path + " is not a supported image"
		return v, cmd
	}

	return v, cmd
}

// View renders the picker.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Select an image"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(v.picker.View())
	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(v.styles.Error.Render(v.notice))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Help.Render("[enter] select  [←/→] folder  [esc] cancel"))

	return b.String()
}

// CurrentDirectory returns the directory being listed.
func (v *View) CurrentDirectory() string {
	return v.picker.CurrentDirectory
}
