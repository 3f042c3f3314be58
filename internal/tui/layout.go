package tui

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// PaneDimensions holds calculated dimensions for the demo layout: the
// picker pane on the left, the inline calendar in the middle, and the mini
// calendar on the right, with a one-line status bar at the bottom.
type PaneDimensions struct {
	PickerWidth int
	InlineWidth int
	MiniWidth   int
	PaneHeight  int

	StatusHeight int

	// PickerAnchorX/Y is where the picker trigger's popover anchors,
	// just below the trigger inside the left pane.
	PickerAnchorX int
	PickerAnchorY int
}

// CalculatePaneDimensions computes pane sizes from the terminal size using
// a 30-40-30 horizontal split. Integer arithmetic keeps the widths summing
// to the terminal width.
func CalculatePaneDimensions(termWidth, termHeight int) PaneDimensions {
	dims := PaneDimensions{StatusHeight: 1}

	dims.PaneHeight = termHeight - dims.StatusHeight
	if dims.PaneHeight < 0 {
		dims.PaneHeight = 0
	}

	dims.PickerWidth = int(float64(termWidth) * 0.30)
	dims.InlineWidth = int(float64(termWidth) * 0.40)
	dims.MiniWidth = termWidth - dims.PickerWidth - dims.InlineWidth

	if dims.PickerWidth < 0 {
		dims.PickerWidth = 0
	}
	if dims.MiniWidth < 0 {
		dims.MiniWidth = 0
	}

	// Trigger renders at the top of the left pane inside its border; the
	// popover drops from beneath it.
	dims.PickerAnchorX = 2
	dims.PickerAnchorY = 4

	return dims
}
