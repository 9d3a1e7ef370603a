// Package resize provides the resize form, the TUI's start view.
package resize

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/components/input"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/keymap"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
)

// View is the resize form: the chosen image, width and height inputs, and
// the request lifecycle of at most one in-flight request.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	width  *input.DimensionInput
	height *input.DimensionInput
	focus  int

	sourcePath string
	preview    domain.Preview
	state      domain.RequestState
	pendingID  string

	viewWidth  int
	viewHeight int
}

// NewView creates a new resize form.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		width:      input.NewDimensionInput(s, "Width"),
		height:     input.NewDimensionInput(s, "Height"),
		state:      domain.StateIdle,
		viewWidth:  80,
		viewHeight: 24,
	}
	v.width.Focus()
	return v
}

// Init initialises the form.
func (v *View) Init() tea.Cmd {
	return v.width.Init()
}

// Update handles key messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.updateFocused(msg)
	}

	k := keyMsg.String()
	switch {
	case keymap.Matches(k, v.keymap.OpenFile):
		return v, emit(messages.OpenFileRequested{})

	case keymap.Matches(k, v.keymap.OpenFolder):
		return v, emit(messages.OpenFolderRequested{})

	case keymap.Matches(k, v.keymap.Back):
		return v, emit(messages.ViewChanged{View: messages.ViewMenu})

	case keymap.Matches(k, v.keymap.NextField), keymap.Matches(k, v.keymap.PrevField):
		return v, v.toggleFocus()

	case keymap.Matches(k, v.keymap.Submit):
		return v, v.submit()
	}

	return v, v.updateFocused(msg)
}

// submit validates the form. Invalid input produces an error toast and
// nothing is sent. A second submit while one is in flight is ignored.
func (v *View) submit() tea.Cmd {
	if v.state.InFlight() {
		return nil
	}

	req, err := domain.ParseResizeRequest(v.sourcePath, v.width.Value(), v.height.Value())
	if err != nil {
		return emit(messages.Notify{Text: "Error: " + err.Error(), Error: true})
	}
	return emit(messages.SubmitRequested{Request: req})
}

func (v *View) toggleFocus() tea.Cmd {
	if v.focus == 0 {
		v.focus = 1
		v.width.Blur()
		return v.height.Focus()
	}
	v.focus = 0
	v.height.Blur()
	return v.width.Focus()
}

func (v *View) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.focus == 0 {
		v.width, cmd = v.width.Update(msg)
	} else {
		v.height, cmd = v.height.Update(msg)
	}
	return cmd
}

// SetFile records a newly chosen image. The inputs are refilled once its
// preview arrives.
func (v *View) SetFile(path string) {
	v.sourcePath = path
	v.preview = domain.NewPreview(path)
	if !v.state.InFlight() {
		v.moveTo(domain.StateFileChosen)
	}
}

// SetPreview stores image details for the current file and pre-fills the
// inputs with its intrinsic size. Without dimensions the inputs are left
// alone. Previews for a file that is no longer selected are dropped.
func (v *View) SetPreview(p domain.Preview) {
	if p.Path != v.sourcePath {
		return
	}
	v.preview = p
	if p.HasDimensions() {
		v.width.SetValue(strconv.Itoa(p.Width))
		v.height.SetValue(strconv.Itoa(p.Height))
	}
}

// MarkSubmitted records the in-flight request ID.
func (v *View) MarkSubmitted(id string) {
	v.pendingID = id
	v.moveTo(domain.StateSubmitted)
}

// moveTo follows the request lifecycle. A finished request passes through
// idle before the next one starts.
func (v *View) moveTo(next domain.RequestState) {
	if !v.state.CanTransition(next) && v.state.CanTransition(domain.StateIdle) {
		v.state = domain.StateIdle
	}
	v.state = next
}

// Finish applies the outcome of the in-flight request. Outcomes for other
// requests are ignored and reported as false.
func (v *View) Finish(outcome domain.ResizeOutcome) bool {
	if !v.state.InFlight() || outcome.RequestID != v.pendingID {
		return false
	}
	v.pendingID = ""
	if outcome.Succeeded() {
		v.moveTo(domain.StateSucceeded)
	} else {
		v.moveTo(domain.StateFailed)
	}
	return true
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("imageshrink"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Resize an image"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Label.Render("Image"))
	if v.sourcePath == "" {
		b.WriteString(v.styles.Muted.Render("none selected - press ctrl+o"))
	} else {
		b.WriteString(v.styles.Normal.Render(v.preview.Name))
		if v.preview.HasDimensions() {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d x %d", v.preview.Width, v.preview.Height)))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Label.Render(""))
		b.WriteString(v.styles.Muted.Render(v.sourcePath))
	}
	b.WriteString("\n\n")

	b.WriteString(v.width.View())
	b.WriteString("\n")
	b.WriteString(v.height.View())
	b.WriteString("\n\n")

	hints := make([]string, 0, len(v.keymap.FormHelp()))
	for _, binding := range v.keymap.FormHelp() {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	b.WriteString(v.styles.Help.Render(strings.Join(hints, "  ")))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.viewWidth = width
	v.viewHeight = height
}

// SourcePath returns the chosen image path.
func (v *View) SourcePath() string {
	return v.sourcePath
}

// Preview returns details of the chosen image.
func (v *View) Preview() domain.Preview {
	return v.preview
}

// State returns the request state.
func (v *View) State() domain.RequestState {
	return v.state
}

// PendingID returns the in-flight request ID, if any.
func (v *View) PendingID() string {
	return v.pendingID
}

// WidthValue returns the raw width text.
func (v *View) WidthValue() string {
	return v.width.Value()
}

// HeightValue returns the raw height text.
func (v *View) HeightValue() string {
	return v.height.Value()
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
