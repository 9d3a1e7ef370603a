package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventForOutcome(t *testing.T) {
	req := ResizeRequest{ID: "r1", Width: 2, Height: 3}

	done := EventForOutcome(Success(req, "/out/a.png"))
	assert.Equal(t, EventResizeDone, done.Kind)
	assert.Equal(t, "r1", done.RequestID)
	assert.True(t, done.IsTerminal())

	failed := EventForOutcome(Failure(req, "boom"))
	assert.Equal(t, EventResizeError, failed.Kind)
	assert.Equal(t, "boom", failed.Outcome.Message)
	assert.True(t, failed.IsTerminal())

	assert.False(t, Event{Kind: EventFileSelected}.IsTerminal())
}

func TestPreview(t *testing.T) {
	p := NewPreview("/home/user/photo.png")
	assert.Equal(t, "photo.png", p.Name)
	assert.False(t, p.HasDimensions())

	p.Width, p.Height = 800, 600
	assert.True(t, p.HasDimensions())
}
