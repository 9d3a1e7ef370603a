package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/components/status"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/components/toast"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/keymap"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/styles"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/views/menu"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/views/picker"
	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/views/resize"
	"github.com/belmqadem/Image-Resizer/internal/core/domain"
	"github.com/belmqadem/Image-Resizer/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The App is the UI surface of the coordinator: it sends commands and
// listens on the coordinator's event channel for file selections and
// resize outcomes.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	resizeView *resize.View
	menuView   *menu.View
	pickerView *picker.View
	statusBar  *status.Bar
	toast      *toast.Model
	help       help.Model

	// currentView tracks which view is active.
	currentView messages.ViewType

	// newID assigns request IDs before submission so the terminal event
	// can be matched even if it arrives before the submit returns.
	newID func() string

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	workspace := ports.Coordinator.Workspace()

	statusBar := status.NewBar(s, km)
	statusBar.SetOutputDir(workspace.OutputDir)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		resizeView:  resize.NewView(s, km),
		menuView:    menu.NewView(s),
		pickerView:  picker.NewView(s, workspace.HomeDir),
		statusBar:   statusBar,
		toast:       toast.New(s, toast.DefaultDuration),
		help:        help.New(),
		currentView: messages.ViewResize,
		newID:       uuid.NewString,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("imageshrink"),
		a.waitForEvent(),
		a.resizeView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		a.pickerView, cmd = a.pickerView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, a.updateCurrent(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.OpenFileRequested:
		a.currentView = messages.ViewResize
		return a, a.pickFile()

	case messages.FilePicked:
		return a, a.handleFilePicked(msg)

	case messages.PickerSelected:
		a.currentView = messages.ViewResize
		return a, a.send(domain.Command{Kind: domain.CommandSelectFile, Path: msg.Path})

	case messages.PickerCancelled:
		a.currentView = messages.ViewResize
		return a, nil

	case messages.PreviewLoaded:
		if msg.Err != nil {
			logger.Debug("preview %s: %v", msg.Preview.Path, msg.Err)
		}
		a.resizeView.SetPreview(msg.Preview)
		return a, nil

	case messages.SubmitRequested:
		req := msg.Request
		req.ID = a.newID()
		a.resizeView.MarkSubmitted(req.ID)
		a.statusBar.SetState(a.resizeView.State())
		return a, a.submit(req)

	case messages.ResizeSubmitted:
		if msg.Err != nil {
			return a, a.finish(domain.Failure(msg.Request, msg.Err.Error()))
		}
		return a, nil

	case messages.OpenFolderRequested:
		return a, a.send(domain.Command{Kind: domain.CommandOpenOutputDir})

	case messages.CoordinatorEvent:
		return a, tea.Batch(a.handleEvent(msg.Event), a.waitForEvent())

	case messages.EventsClosed:
		return a, tea.Quit

	case messages.Notify:
		kind := toast.KindSuccess
		if msg.Error {
			kind = toast.KindError
		}
		return a, a.toast.Show(msg.Text, kind)

	case messages.ToastExpired:
		a.toast, cmd = a.toast.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.toast.Show("Error: "+msg.Err.Error(), toast.KindError)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink, directory listings) to the active view
	return a, a.updateCurrent(msg)
}

func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewResize:
		a.resizeView, cmd = a.resizeView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewPicker:
		a.pickerView, cmd = a.pickerView.Update(msg)
	case messages.ViewHelp:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}

	return cmd
}

// handleFilePicked applies the native dialog result. Cancelling changes
// nothing. Without a native dialog the in-terminal picker is shown.
func (a *App) handleFilePicked(msg messages.FilePicked) tea.Cmd {
	switch {
	case errors.Is(msg.Err, domain.ErrDialogUnavailable):
		a.currentView = messages.ViewPicker
		return a.pickerView.Init()
	case msg.Err != nil:
		a.err = msg.Err
		return a.toast.Show("Error: "+msg.Err.Error(), toast.KindError)
	case !msg.OK:
		return nil
	default:
		return a.setFile(msg.Path)
	}
}

func (a *App) handleEvent(ev domain.Event) tea.Cmd {
	logger.Debug("coordinator event %s", ev.Kind)

	switch ev.Kind {
	case domain.EventFileSelected:
		return a.setFile(ev.Path)
	case domain.EventResizeDone, domain.EventResizeError:
		return a.finish(ev.Outcome)
	default:
		return nil
	}
}

func (a *App) setFile(path string) tea.Cmd {
	a.resizeView.SetFile(path)
	a.statusBar.SetState(a.resizeView.State())
	a.statusBar.SetFile(path)
	a.currentView = messages.ViewResize
	return a.loadPreview(path)
}

// finish shows the toast for the in-flight request's outcome.
func (a *App) finish(outcome domain.ResizeOutcome) tea.Cmd {
	if !a.resizeView.Finish(outcome) {
		logger.Debug("ignoring outcome for request %s", outcome.RequestID)
		return nil
	}
	a.statusBar.SetState(a.resizeView.State())

	kind := toast.KindSuccess
	if !outcome.Succeeded() {
		kind = toast.KindError
	}
	return a.toast.Show(outcome.Summary(), kind)
}

// waitForEvent blocks on the coordinator's event channel.
func (a *App) waitForEvent() tea.Cmd {
	events := a.ports.Coordinator.Events()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return messages.EventsClosed{}
		}
		return messages.CoordinatorEvent{Event: ev}
	}
}

func (a *App) pickFile() tea.Cmd {
	ctx := a.ctx
	coordinator := a.ports.Coordinator
	return func() tea.Msg {
		path, ok, err := coordinator.PickFile(ctx)
		return messages.FilePicked{Path: path, OK: ok, Err: err}
	}
}

func (a *App) loadPreview(path string) tea.Cmd {
	if a.ports.Preview == nil {
		return nil
	}
	previews := a.ports.Preview
	return func() tea.Msg {
		p, err := previews.Load(path)
		return messages.PreviewLoaded{Preview: p, Err: err}
	}
}

func (a *App) submit(req domain.ResizeRequest) tea.Cmd {
	ctx := a.ctx
	coordinator := a.ports.Coordinator
	return func() tea.Msg {
		_, err := coordinator.Submit(ctx, req)
		return messages.ResizeSubmitted{Request: req, Err: err}
	}
}

func (a *App) send(command domain.Command) tea.Cmd {
	ctx := a.ctx
	coordinator := a.ports.Coordinator
	return func() tea.Msg {
		if err := coordinator.Send(ctx, command); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewMenu:
		body = a.menuView.View()
	case messages.ViewPicker:
		body = a.pickerView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.resizeView.View()
	}

	parts := []string{body}
	if a.toast.Visible() {
		parts = append(parts, "", a.toast.View())
	}
	parts = append(parts, "", a.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewHelp lists every binding from the keymap, then the picker keys the
// filepicker component owns.
func (a *App) viewHelp() string {
	a.help.ShowAll = true
	a.help.Width = a.width

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		a.help.View(a.keymap),
		"",
		a.styles.Muted.Render("Menu: 1-5 choose an entry, q quits."),
		a.styles.Muted.Render("File picker: ←/→ leave or enter a folder, esc cancels."),
		"",
		a.styles.Help.Render("[esc] back to menu"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.resizeView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
