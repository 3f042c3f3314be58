package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/datemath"
)

var miniCalendarTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("245"))

// MiniCalendar is the compact embedded month view: same grid builder and
// date math as Calendar, but no week numbers, no month/year picker views,
// and navigation limited to previous/next month.
type MiniCalendar struct {
	opts calendar.Options
	view calendar.View
	now  func() time.Time
}

// NewMiniCalendar creates a mini calendar showing the current month.
func NewMiniCalendar(opts calendar.Options) *MiniCalendar {
	mc := &MiniCalendar{
		opts: opts,
		now:  time.Now,
	}
	mc.view = calendar.NewView(mc.now())
	return mc
}

// SetOptions replaces the configuration.
func (mc *MiniCalendar) SetOptions(opts calendar.Options) {
	mc.opts = opts
}

// SetValue updates the controlled value shown as selected.
func (mc *MiniCalendar) SetValue(value *time.Time) {
	mc.opts.Value = value
}

// SetClock overrides the time source. Used by tests.
func (mc *MiniCalendar) SetClock(now func() time.Time) {
	mc.now = now
}

// CurrentView returns the view state.
func (mc *MiniCalendar) CurrentView() calendar.View {
	return mc.view
}

// PrevMonth moves the view one month back.
func (mc *MiniCalendar) PrevMonth() {
	mc.view = mc.view.PrevMonth()
}

// NextMonth moves the view one month forward.
func (mc *MiniCalendar) NextMonth() {
	mc.view = mc.view.NextMonth()
}

// Update handles Bubble Tea messages.
func (mc *MiniCalendar) Update(msg tea.Msg) (*MiniCalendar, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "h", "left":
			mc.PrevMonth()
		case "l", "right":
			mc.NextMonth()
		}
	}
	return mc, nil
}

// View renders the compact grid.
func (mc *MiniCalendar) View() string {
	loc := mc.opts.Loc()
	weekStart := mc.opts.WeekStart()
	grid := calendar.BuildGrid(mc.view.Year, mc.view.Month, weekStart)
	now := mc.now()
	width := calendar.GridColumns * dayCellWidth

	var b strings.Builder

	title := fmt.Sprintf("%s %d", loc.MonthAbbrev(mc.view.Month), mc.view.Year)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, miniCalendarTitleStyle.Render(title)))
	b.WriteString("\n")

	var header strings.Builder
	for i := 0; i < calendar.GridColumns; i++ {
		header.WriteString(fmt.Sprintf("%-*s", dayCellWidth, loc.WeekdayAbbrev((weekStart+i)%7)))
	}
	b.WriteString(calendarHeaderStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	for _, week := range calendar.GridWeeks(grid) {
		for _, cell := range week {
			text := fmt.Sprintf("%2d ", cell.Day)
			date := cell.Date(time.Local)

			style := calendarDayStyle
			switch {
			case !cell.CurrentMonth:
				style = calendarFillerStyle
			case mc.opts.Value != nil && datemath.SameDay(date, *mc.opts.Value):
				style = calendarSelectedStyle
			case datemath.SameDay(date, now):
				style = calendarTodayStyle
			}
			b.WriteString(style.Render(text))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
