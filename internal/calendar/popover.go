package calendar

// Position is a screen coordinate in cells, origin top-left.
type Position struct {
	X int
	Y int
}

// Size is a rendered width and height in cells.
type Size struct {
	Width  int
	Height int
}

// PopoverMargin is the minimum distance kept between a popover and the
// viewport edges.
const PopoverMargin = 1

// ClampPopover adjusts pos so that a popover of the given size stays inside
// the viewport with PopoverMargin on every side. Each axis clamps
// independently: first pulled back from the far edge, then floored at the
// margin. Runs once, after the popover's rendered size is known.
func ClampPopover(pos Position, size Size, viewport Size) Position {
	if pos.X+size.Width > viewport.Width-PopoverMargin {
		pos.X = viewport.Width - PopoverMargin - size.Width
	}
	if pos.X < PopoverMargin {
		pos.X = PopoverMargin
	}
	if pos.Y+size.Height > viewport.Height-PopoverMargin {
		pos.Y = viewport.Height - PopoverMargin - size.Height
	}
	if pos.Y < PopoverMargin {
		pos.Y = PopoverMargin
	}
	return pos
}

// Contains reports whether the point (x, y) falls inside a popover placed
// at pos with the given size. Used to detect outside clicks.
func Contains(pos Position, size Size, x, y int) bool {
	return x >= pos.X && x < pos.X+size.Width && y >= pos.Y && y < pos.Y+size.Height
}
