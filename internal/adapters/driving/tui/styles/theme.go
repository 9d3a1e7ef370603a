// Package styles holds the lipgloss palette shared by the TUI views.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the palette. Each colour has a light and a dark terminal variant.
type Theme struct {
	Accent    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Dim       lipgloss.AdaptiveColor
	Good      lipgloss.AdaptiveColor
	Bad       lipgloss.AdaptiveColor
	Frame     lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme is a blue and cyan palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    adaptive("#1D4ED8", "#60A5FA"),
		Highlight: adaptive("#0E7490", "#22D3EE"),
		Text:      adaptive("#111827", "#E5E7EB"),
		Dim:       adaptive("#6B7280", "#9CA3AF"),
		Good:      adaptive("#15803D", "#4ADE80"),
		Bad:       adaptive("#B91C1C", "#F87171"),
		Frame:     adaptive("#D1D5DB", "#374151"),
	}
}

// Styles are the rendered styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title, Subtitle lipgloss.Style
	Normal, Muted   lipgloss.Style
	Selected        lipgloss.Style
	Error, Success  lipgloss.Style

	// Form fields: Label names a field, InputField and FocusedField frame it.
	Label        lipgloss.Style
	InputField   lipgloss.Style
	FocusedField lipgloss.Style

	ToastSuccess, ToastError lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func framed(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)
}

// NewStyles derives Styles from t, or from DefaultTheme when t is nil.
func NewStyles(t *Theme) *Styles {
	if t == nil {
		t = DefaultTheme()
	}

	toast := func(c lipgloss.TerminalColor) lipgloss.Style {
		return framed(c).Padding(0, 2).Bold(true).Foreground(c)
	}

	return &Styles{
		theme:        t,
		Title:        fg(t.Accent).Bold(true),
		Subtitle:     fg(t.Highlight),
		Normal:       fg(t.Text),
		Muted:        fg(t.Dim),
		Selected:     fg(t.Highlight).Bold(true),
		Error:        fg(t.Bad),
		Success:      fg(t.Good),
		Label:        fg(t.Text).Width(8),
		InputField:   framed(t.Frame),
		FocusedField: framed(t.Accent),
		ToastSuccess: toast(t.Good),
		ToastError:   toast(t.Bad),
		StatusBar:    fg(t.Dim).Padding(0, 1),
		Help:         fg(t.Dim),
	}
}

// DefaultStyles is NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

func (s *Styles) Theme() *Theme {
	return s.theme
}
