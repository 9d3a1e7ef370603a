package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/tui/messages"
)

func TestAllowedTypes(t *testing.T) {
	assert.Equal(t, []string{
		".jpg", ".jpeg", ".png", ".gif", ".webp",
		".JPG", ".JPEG", ".PNG", ".GIF", ".WEBP",
	}, AllowedTypes())
}

func TestNewView(t *testing.T) {
	dir := t.TempDir()

	v := NewView(nil, dir)

	require.NotNil(t, v)
	assert.Equal(t, dir, v.CurrentDirectory())
	assert.Equal(t, AllowedTypes(), v.picker.AllowedTypes)
	assert.False(t, v.picker.DirAllowed)
	assert.NotNil(t, v.Init())
}

func TestView_EscCancels(t *testing.T) {
	v := NewView(nil, t.TempDir())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.PickerCancelled{}, cmd())
}

func TestView_View(t *testing.T) {
	dir := t.TempDir()
	v := NewView(nil, dir)

	view := v.View()

	assert.Contains(t, view, "Select an image")
	assert.Contains(t, view, dir)
	assert.Contains(t, view, "[esc] cancel")
}
