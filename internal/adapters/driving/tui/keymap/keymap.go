// Package keymap holds the TUI key bindings.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap groups bindings by where they apply. Form bindings act on the
// resize view; Up, Down and Select act on lists (menu and picker).
type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	OpenFile   key.Binding
	OpenFolder key.Binding
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("ctrl+c", "quit", "ctrl+c"),
		Back: bind("esc", "menu", "esc"),

		OpenFile:   bind("ctrl+o", "open image", "ctrl+o"),
		OpenFolder: bind("ctrl+f", "output folder", "ctrl+f"),
		Submit:     bind("enter", "resize", "enter"),
		NextField:  bind("tab", "next field", "tab", "down"),
		PrevField:  bind("shift+tab", "prev field", "shift+tab", "up"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "select", "enter"),
	}
}

// FormHelp is the hint line under the resize form.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.OpenFile, k.Submit, k.NextField, k.OpenFolder, k.Back}
}

// StatusHelp is the short hint list in the status bar.
func (k *KeyMap) StatusHelp() []key.Binding {
	return []key.Binding{k.OpenFile, k.Submit, k.Quit}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding { return k.StatusHelp() }

func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenFile, k.OpenFolder, k.Submit},
		{k.NextField, k.PrevField},
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// Matches reports whether keyStr, as produced by tea.KeyMsg.String, is bound
// to binding.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
