package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.OpenFile.Keys(), "ctrl+o")
	assert.Contains(t, km.OpenFolder.Keys(), "ctrl+f")
	assert.Contains(t, km.Submit.Keys(), "enter")
	assert.Contains(t, km.Back.Keys(), "esc")
}

func TestKeyMap_FormHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FormHelp()

	require.Len(t, bindings, 5)
	for _, b := range bindings {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	assert.Len(t, groups, 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+o", km.OpenFile))
	assert.True(t, Matches("tab", km.NextField))
	assert.False(t, Matches("x", km.Submit))
}

func TestKeyMap_StatusHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.StatusHelp()

	require.Len(t, bindings, 3)
	assert.Equal(t, "open image", bindings[0].Help().Desc)
	assert.Equal(t, bindings, km.ShortHelp())
}

func TestMatches_ListBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
	assert.True(t, Matches("down", km.NextField))
	assert.False(t, Matches("enter", km.Back))
}
