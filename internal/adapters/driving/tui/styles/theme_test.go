package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []struct {
		name  string
		color string
	}{
		{"accent light", theme.Accent.Light},
		{"accent dark", theme.Accent.Dark},
		{"good dark", theme.Good.Dark},
		{"bad dark", theme.Bad.Dark},
	} {
		assert.NotEmpty(t, c.color, c.name)
	}
	assert.NotEqual(t, theme.Good, theme.Bad)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_CustomTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Bad = adaptive("#000000", "#FFFFFF")

	s := NewStyles(theme)

	assert.Same(t, theme, s.Theme())
	assert.Equal(t, theme.Bad, s.Error.GetForeground())
}

func TestDefaultStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.ToastSuccess.Render("done"), "done")
	assert.Contains(t, s.ToastError.Render("failed"), "failed")
	assert.Contains(t, s.Label.Render("Width"), "Width")
}
