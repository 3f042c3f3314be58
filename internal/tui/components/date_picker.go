package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/logger"
)

var (
	datePickerTriggerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	datePickerTriggerFocusStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("39")).
					Padding(0, 1)

	datePickerPopoverStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	datePickerPlaceholderStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("240"))
)

// popoverOpenedMsg triggers the one-shot reposition pass that runs after the
// popover's rendered size is known.
type popoverOpenedMsg struct{}

// DatePicker wraps a Calendar with an input-style trigger and a positioned
// popover. The popover opens at an anchor captured at open time and is
// clamped to the viewport once its rendered size is known. In inline mode
// the calendar is always shown and no popover state exists.
type DatePicker struct {
	calendar *Calendar
	opts     calendar.Options

	open     bool
	anchor   calendar.Position
	position calendar.Position
	size     calendar.Size
	viewport calendar.Size
	focused  bool
}

// NewDatePicker creates a date picker around the given options.
func NewDatePicker(opts calendar.Options) *DatePicker {
	return &DatePicker{
		calendar: NewCalendar(opts),
		opts:     opts,
	}
}

// SetOptions replaces the configuration on the picker and its calendar.
func (dp *DatePicker) SetOptions(opts calendar.Options) {
	dp.opts = opts
	dp.calendar.SetOptions(opts)
}

// Calendar exposes the wrapped calendar, mainly for tests.
func (dp *DatePicker) Calendar() *Calendar {
	return dp.calendar
}

// SetValue updates the controlled value.
func (dp *DatePicker) SetValue(value *time.Time) {
	dp.opts.Value = value
	dp.calendar.SetValue(value)
}

// Value returns the controlled value.
func (dp *DatePicker) Value() *time.Time {
	return dp.opts.Value
}

// SetViewport records the terminal size used for popover clamping.
func (dp *DatePicker) SetViewport(width, height int) {
	dp.viewport = calendar.Size{Width: width, Height: height}
	if dp.open {
		dp.reposition()
	}
}

// SetAnchor records where the trigger sits on screen; the popover opens
// there.
func (dp *DatePicker) SetAnchor(x, y int) {
	dp.anchor = calendar.Position{X: x, Y: y}
}

// Focus marks the trigger as focused so it accepts open keys.
func (dp *DatePicker) Focus() {
	dp.focused = true
}

// Blur removes focus and closes any open popover.
func (dp *DatePicker) Blur() {
	dp.focused = false
	dp.Close()
}

// IsOpen reports whether the calendar surface is showing.
func (dp *DatePicker) IsOpen() bool {
	return dp.open || dp.opts.Inline
}

// Open shows the popover at the anchor. Disabled and read-only pickers do
// not open. The returned command schedules the deferred reposition pass.
func (dp *DatePicker) Open() tea.Cmd {
	if dp.opts.Disabled || dp.opts.ReadOnly || dp.opts.Inline || dp.open {
		return nil
	}
	dp.open = true
	dp.position = dp.anchor
	dp.size = calendar.Size{}
	logger.Debug("datepicker: opened", "x", dp.anchor.X, "y", dp.anchor.Y)
	return func() tea.Msg {
		return popoverOpenedMsg{}
	}
}

// Close hides the popover.
func (dp *DatePicker) Close() {
	dp.open = false
}

// Clear resets the value to nil without opening the popover. No-op when the
// clear action is disabled or there is nothing to clear.
func (dp *DatePicker) Clear() tea.Cmd {
	if !dp.opts.ShowClearButton() || dp.opts.Disabled || dp.opts.ReadOnly {
		return nil
	}
	if dp.opts.Value == nil {
		return nil
	}
	dp.SetValue(nil)
	if dp.opts.OnChange != nil {
		dp.opts.OnChange(nil)
	}
	return func() tea.Msg {
		return DateClearedMsg{}
	}
}

// PopoverPosition returns the clamped popover position.
func (dp *DatePicker) PopoverPosition() calendar.Position {
	return dp.position
}

// reposition measures the rendered popover and clamps it into the viewport.
// Runs once per open plus once per viewport change, never in a loop.
func (dp *DatePicker) reposition() {
	view := dp.PopoverView()
	dp.size = calendar.Size{
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
	dp.position = calendar.ClampPopover(dp.anchor, dp.size, dp.viewport)
	logger.Debug("datepicker: repositioned",
		"x", dp.position.X, "y", dp.position.Y,
		"w", dp.size.Width, "h", dp.size.Height)
}

// Update handles Bubble Tea messages.
func (dp *DatePicker) Update(msg tea.Msg) (*DatePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case popoverOpenedMsg:
		if dp.open {
			dp.reposition()
		}
		return dp, nil

	case tea.WindowSizeMsg:
		dp.SetViewport(msg.Width, msg.Height)
		return dp, nil

	case DateSelectedMsg:
		dp.SetValue(&msg.Date)
		if !dp.opts.Inline {
			dp.Close()
		}
		return dp, nil

	case tea.KeyMsg:
		return dp.handleKey(msg)

	case tea.MouseMsg:
		return dp.handleMouse(msg)
	}

	return dp, nil
}

func (dp *DatePicker) handleKey(msg tea.KeyMsg) (*DatePicker, tea.Cmd) {
	if !dp.IsOpen() {
		if !dp.focused {
			return dp, nil
		}
		switch msg.String() {
		case "enter", " ":
			return dp, dp.Open()
		case "c", "backspace", "delete":
			return dp, dp.Clear()
		}
		return dp, nil
	}

	switch msg.String() {
	case "esc":
		if !dp.opts.Inline {
			dp.Close()
			return dp, nil
		}
	case "c":
		if !dp.opts.Inline {
			dp.Close()
		}
		return dp, dp.Clear()
	}

	var cmd tea.Cmd
	dp.calendar, cmd = dp.calendar.Update(msg)
	return dp, cmd
}

func (dp *DatePicker) handleMouse(msg tea.MouseMsg) (*DatePicker, tea.Cmd) {
	if !dp.open {
		return dp, nil
	}

	// Any scroll closes the popover, mirroring close-on-ancestor-scroll.
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		dp.Close()
		return dp, nil
	}

	if msg.Action == tea.MouseActionPress {
		if !calendar.Contains(dp.position, dp.size, msg.X, msg.Y) {
			dp.Close()
			return dp, nil
		}
		// Translate into calendar-local coordinates, stepping inside the
		// popover frame.
		frame := datePickerPopoverStyle
		local := tea.MouseMsg{
			X:      msg.X - dp.position.X - frame.GetBorderLeftSize() - frame.GetPaddingLeft(),
			Y:      msg.Y - dp.position.Y - frame.GetBorderTopSize(),
			Action: msg.Action,
			Button: msg.Button,
		}
		var cmd tea.Cmd
		dp.calendar, cmd = dp.calendar.Update(local)
		return dp, cmd
	}

	return dp, nil
}

// View renders the trigger line, or the bare calendar in inline mode.
func (dp *DatePicker) View() string {
	if dp.opts.Inline {
		return dp.calendar.View()
	}

	display := datemath.Format(dp.valueOrZero(), dp.opts.DisplayFormat(), dp.opts.Loc())
	if display == "" {
		display = datePickerPlaceholderStyle.Render(dp.opts.DisplayFormat())
	}
	display += " ▾"

	if dp.focused {
		return datePickerTriggerFocusStyle.Render(display)
	}
	return datePickerTriggerStyle.Render(display)
}

// PopoverView renders the popover body. The shell overlays it at
// PopoverPosition while the popover is open.
func (dp *DatePicker) PopoverView() string {
	if dp.opts.Inline {
		return ""
	}
	return datePickerPopoverStyle.Render(dp.calendar.View())
}

func (dp *DatePicker) valueOrZero() time.Time {
	if dp.opts.Value == nil {
		return time.Time{}
	}
	return *dp.opts.Value
}
