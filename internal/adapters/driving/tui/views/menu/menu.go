// Package menu is the action list reached with esc from the resize form.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. Choosing it emits Msg, or quits when Quit is set.
// Hint is the form shortcut shown beside the label.
type Item struct {
	Label string
	Hint  string
	Msg   tea.Msg
	Quit  bool
}

// View lists the actions available outside the resize form.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

func defaultItems() []Item {
	return []Item{
		{Label: "Resize Image", Msg: messages.ViewChanged{View: messages.ViewResize}},
		{Label: "Open Image...", Hint: "ctrl+o", Msg: messages.OpenFileRequested{}},
		{Label: "Open Output Folder", Hint: "ctrl+f", Msg: messages.OpenFolderRequested{}},
		{Label: "Help", Msg: messages.ViewChanged{View: messages.ViewHelp}},
		{Label: "Quit", Hint: "ctrl+c", Quit: true},
	}
}

// NewView returns a menu with the cursor on the first entry.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, items: defaultItems(), width: 80, height: 24}
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd { return nil }

// Update moves the cursor or activates an entry. Digits 1-9 activate the
// matching entry directly.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "up", "k":
			v.selected = max(v.selected-1, 0)
		case "down", "j":
			v.selected = min(v.selected+1, len(v.items)-1)
		case "home", "g":
			v.selected = 0
		case "end", "G":
			v.selected = len(v.items) - 1
		case "enter":
			return v, v.activate(v.selected)
		case "esc":
			return v, emit(messages.ViewChanged{View: messages.ViewResize})
		case "q":
			return v, tea.Quit
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(v.items) {
				v.selected = n - 1
				return v, v.activate(v.selected)
			}
		}
	}
	return v, nil
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return emit(item.Msg)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the entry list with numbers and shortcut hints.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("imageshrink") + "\n\n")
	b.WriteString(v.styles.Subtitle.Render("Resize images into your home folder") + "\n\n")

	for i, item := range v.items {
		cursor, style := "  ", v.styles.Normal
		if i == v.selected {
			cursor, style = "> ", v.styles.Selected
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, style.Render(item.Label))
		if item.Hint != "" {
			line += "  " + hint.Render(item.Hint)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + hint.Render("[j/k] Navigate  [1-5] Choose  [Enter] Select  [Esc] Back  [q] Quit"))
	return b.String()
}

// SetDimensions records the terminal size and marks the view ready.
func (v *View) SetDimensions(width, height int) {
	v.width, v.height = width, height
	v.ready = true
}

// Selected returns the cursor index.
func (v *View) Selected() int { return v.selected }
