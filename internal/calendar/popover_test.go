package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPopoverRightEdge(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}
	size := Size{Width: 30, Height: 12}

	pos := ClampPopover(Position{X: 70, Y: 4}, size, viewport)

	assert.LessOrEqual(t, pos.X+size.Width, viewport.Width-PopoverMargin)
	assert.Equal(t, 4, pos.Y, "y axis clamps independently")
}

func TestClampPopoverBottomEdge(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}
	size := Size{Width: 30, Height: 12}

	pos := ClampPopover(Position{X: 10, Y: 20}, size, viewport)

	assert.Equal(t, 10, pos.X, "x axis clamps independently")
	assert.LessOrEqual(t, pos.Y+size.Height, viewport.Height-PopoverMargin)
}

func TestClampPopoverInsideViewportUnchanged(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}
	size := Size{Width: 20, Height: 10}

	pos := ClampPopover(Position{X: 5, Y: 3}, size, viewport)

	assert.Equal(t, Position{X: 5, Y: 3}, pos)
}

func TestClampPopoverFloorsAtMargin(t *testing.T) {
	// A popover larger than the viewport pins to the margin rather than
	// running off the near edge.
	viewport := Size{Width: 20, Height: 10}
	size := Size{Width: 40, Height: 30}

	pos := ClampPopover(Position{X: 5, Y: 5}, size, viewport)

	assert.Equal(t, PopoverMargin, pos.X)
	assert.Equal(t, PopoverMargin, pos.Y)
}

func TestContains(t *testing.T) {
	pos := Position{X: 10, Y: 5}
	size := Size{Width: 20, Height: 10}

	assert.True(t, Contains(pos, size, 10, 5), "top-left corner")
	assert.True(t, Contains(pos, size, 29, 14), "bottom-right interior")
	assert.False(t, Contains(pos, size, 30, 5), "past right edge")
	assert.False(t, Contains(pos, size, 10, 15), "past bottom edge")
	assert.False(t, Contains(pos, size, 9, 5), "left of popover")
}
