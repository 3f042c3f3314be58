package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/logger"
)

var (
	calendarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	calendarHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("240"))

	calendarWeekNumStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	calendarDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	calendarFillerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	calendarDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Strikethrough(true)

	calendarTodayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Bold(true)

	calendarHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	calendarSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("39")).
				Bold(true)

	calendarCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237"))

	calendarActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// Rendering geometry. One day cell is "%2d " wide; the week-number column
// prepends "%2d  ". Mouse-to-cell mapping in CellAt relies on these.
const (
	dayCellWidth    = 3
	weekColumnWidth = 4
	gridFirstRow    = 2 // rows 0 and 1 are the title and weekday header
)

// DateSelectedMsg is emitted when a selectable day has been chosen.
type DateSelectedMsg struct {
	Date time.Time
}

// DateClearedMsg is emitted when the selection has been cleared.
type DateClearedMsg struct{}

// Calendar is the interactive month view: the 42-cell grid plus the
// month/year picker sub-views, composed over the pure grid builder and view
// state machine. The selected value is owned by the caller (controlled
// value); the component only proposes changes via DateSelectedMsg and the
// OnChange callback.
type Calendar struct {
	opts   calendar.Options
	view   calendar.View
	cursor int // day-of-month in days mode, 0..11 page index otherwise
	now    func() time.Time
}

// NewCalendar creates a calendar showing the current month, or the month of
// the configured value when one is set.
func NewCalendar(opts calendar.Options) *Calendar {
	c := &Calendar{
		opts: opts,
		now:  time.Now,
	}
	c.view = calendar.NewView(c.now())
	if opts.Value != nil {
		c.view.Year = opts.Value.Year()
		c.view.Month = int(opts.Value.Month()) - 1
	}
	c.cursor = c.initialCursor()
	return c
}

// SetOptions replaces the configuration. The displayed month is kept.
func (c *Calendar) SetOptions(opts calendar.Options) {
	c.opts = opts
	c.clampCursor()
}

// Options returns the current configuration.
func (c *Calendar) Options() calendar.Options {
	return c.opts
}

// SetValue updates the controlled value shown as selected.
func (c *Calendar) SetValue(value *time.Time) {
	c.opts.Value = value
}

// Value returns the controlled value.
func (c *Calendar) Value() *time.Time {
	return c.opts.Value
}

// CurrentView returns the view state, mainly for tests and the shell's
// status line.
func (c *Calendar) CurrentView() calendar.View {
	return c.view
}

// SetClock overrides the time source. Used by tests.
func (c *Calendar) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Calendar) initialCursor() int {
	if c.opts.Value != nil &&
		c.opts.Value.Year() == c.view.Year &&
		int(c.opts.Value.Month())-1 == c.view.Month {
		return c.opts.Value.Day()
	}
	now := c.now()
	if now.Year() == c.view.Year && int(now.Month())-1 == c.view.Month {
		return now.Day()
	}
	return 1
}

// clampCursor keeps the day cursor inside the displayed month after
// navigation (e.g. the 31st has no counterpart in February).
func (c *Calendar) clampCursor() {
	if c.view.Mode != calendar.ModeDays {
		return
	}
	max := datemath.DaysInMonth(c.view.Year, c.view.Month)
	if c.cursor > max {
		c.cursor = max
	}
	if c.cursor < 1 {
		c.cursor = 1
	}
}

// Update handles Bubble Tea messages.
func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	}
	return c, nil
}

func (c *Calendar) handleKey(msg tea.KeyMsg) (*Calendar, tea.Cmd) {
	switch c.view.Mode {
	case calendar.ModeMonths:
		return c.handleMonthsKey(msg)
	case calendar.ModeYears:
		return c.handleYearsKey(msg)
	}
	return c.handleDaysKey(msg)
}

func (c *Calendar) handleDaysKey(msg tea.KeyMsg) (*Calendar, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		c.moveCursor(-1)
	case "l", "right":
		c.moveCursor(1)
	case "k", "up":
		c.moveCursor(-calendar.GridColumns)
	case "j", "down":
		c.moveCursor(calendar.GridColumns)
	case "[", "pgup":
		c.view = c.view.PrevMonth()
		c.clampCursor()
	case "]", "pgdown":
		c.view = c.view.NextMonth()
		c.clampCursor()
	case "{":
		c.view = c.view.PrevYear()
		c.clampCursor()
	case "}":
		c.view = c.view.NextYear()
		c.clampCursor()
	case "m":
		c.view = c.view.ToggleMode(calendar.ModeMonths)
		c.cursor = c.view.Month
	case "y":
		c.view = c.view.ToggleMode(calendar.ModeYears)
		c.cursor = c.view.Year - c.view.YearsPage()
	case "t":
		return c, c.JumpToToday()
	case "enter", " ":
		cell := calendar.Day{
			Day:          c.cursor,
			Month:        c.view.Month,
			Year:         c.view.Year,
			CurrentMonth: true,
		}
		return c, c.SelectCell(cell)
	}
	return c, nil
}

func (c *Calendar) handleMonthsKey(msg tea.KeyMsg) (*Calendar, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		c.movePageCursor(-1)
	case "l", "right":
		c.movePageCursor(1)
	case "k", "up":
		c.movePageCursor(-3)
	case "j", "down":
		c.movePageCursor(3)
	case "m", "esc":
		c.view = c.view.ToggleMode(calendar.ModeMonths)
		c.cursor = c.initialCursor()
	case "enter", " ":
		c.view = c.view.SelectMonth(c.cursor)
		c.cursor = 1
		c.clampCursor()
		logger.Debug("calendar: month selected", "year", c.view.Year, "month", c.view.Month)
	}
	return c, nil
}

func (c *Calendar) handleYearsKey(msg tea.KeyMsg) (*Calendar, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		c.movePageCursor(-1)
	case "l", "right":
		c.movePageCursor(1)
	case "k", "up":
		c.movePageCursor(-3)
	case "j", "down":
		c.movePageCursor(3)
	case "[", "pgup":
		c.view = c.view.PrevYear()
	case "]", "pgdown":
		c.view = c.view.NextYear()
	case "y", "esc":
		c.view = c.view.ToggleMode(calendar.ModeYears)
		c.cursor = c.initialCursor()
	case "enter", " ":
		c.view = c.view.SelectYear(c.view.YearsPage() + c.cursor)
		c.cursor = c.view.Month
		logger.Debug("calendar: year selected", "year", c.view.Year)
	}
	return c, nil
}

func (c *Calendar) handleMouse(msg tea.MouseMsg) (*Calendar, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return c, nil
	}
	if c.view.Mode != calendar.ModeDays {
		return c, nil
	}
	cell, ok := c.CellAt(msg.X, msg.Y)
	if !ok {
		return c, nil
	}
	if cell.CurrentMonth {
		c.cursor = cell.Day
	}
	return c, c.SelectCell(cell)
}

func (c *Calendar) moveCursor(delta int) {
	day := c.cursor + delta
	max := datemath.DaysInMonth(c.view.Year, c.view.Month)
	if day < 1 {
		c.view = c.view.PrevMonth()
		day += datemath.DaysInMonth(c.view.Year, c.view.Month)
	} else if day > max {
		c.view = c.view.NextMonth()
		day -= max
	}
	c.cursor = day
	c.clampCursor()
}

func (c *Calendar) movePageCursor(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor > 11 {
		c.cursor = 11
	}
}

// SelectCell proposes the cell's date as the new selection. Filler cells and
// disabled dates are silent no-ops: no message is emitted and no callback
// fires.
func (c *Calendar) SelectCell(cell calendar.Day) tea.Cmd {
	if c.opts.Disabled || c.opts.ReadOnly {
		return nil
	}
	if !cell.CurrentMonth {
		return nil
	}
	date := cell.Date(time.Local)
	if datemath.IsDisabled(date, c.opts.Constraints) {
		logger.Debug("calendar: ignored disabled date", "date", date.Format("2006-01-02"))
		return nil
	}

	if c.opts.OnChange != nil {
		c.opts.OnChange(&date)
	}
	return func() tea.Msg {
		return DateSelectedMsg{Date: date}
	}
}

// JumpToToday resets the view to the current month and, when the today
// action is enabled, proposes today as the selection.
func (c *Calendar) JumpToToday() tea.Cmd {
	now := c.now()
	c.view = c.view.Today(now)
	c.cursor = now.Day()
	if !c.opts.ShowTodayButton() {
		return nil
	}
	return c.SelectCell(calendar.Day{
		Day:          now.Day(),
		Month:        int(now.Month()) - 1,
		Year:         now.Year(),
		CurrentMonth: true,
	})
}

// CellAt maps component-local coordinates to a grid cell. (0,0) is the top
// left of the rendered view; only the days grid is mapped.
func (c *Calendar) CellAt(x, y int) (calendar.Day, bool) {
	row := y - gridFirstRow
	if row < 0 || row >= calendar.GridSize/calendar.GridColumns {
		return calendar.Day{}, false
	}
	if c.opts.ShowWeekNumbers() {
		x -= weekColumnWidth
	}
	if x < 0 {
		return calendar.Day{}, false
	}
	col := x / dayCellWidth
	if col >= calendar.GridColumns {
		return calendar.Day{}, false
	}
	grid := calendar.BuildGrid(c.view.Year, c.view.Month, c.opts.WeekStart())
	return grid[row*calendar.GridColumns+col], true
}

// View renders the calendar in its current mode.
func (c *Calendar) View() string {
	switch c.view.Mode {
	case calendar.ModeMonths:
		return c.viewMonths()
	case calendar.ModeYears:
		return c.viewYears()
	}
	return c.viewDays()
}

func (c *Calendar) viewDays() string {
	loc := c.opts.Loc()
	weekStart := c.opts.WeekStart()
	grid := calendar.BuildGrid(c.view.Year, c.view.Month, weekStart)
	now := c.now()

	width := calendar.GridColumns * dayCellWidth
	if c.opts.ShowWeekNumbers() {
		width += weekColumnWidth
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %d", loc.MonthName(c.view.Month), c.view.Year)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, calendarTitleStyle.Render(title)))
	b.WriteString("\n")

	var header strings.Builder
	if c.opts.ShowWeekNumbers() {
		header.WriteString(strings.Repeat(" ", weekColumnWidth))
	}
	for i := 0; i < calendar.GridColumns; i++ {
		header.WriteString(fmt.Sprintf("%-*s", dayCellWidth, loc.WeekdayAbbrev((weekStart+i)%7)))
	}
	b.WriteString(calendarHeaderStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	for _, week := range calendar.GridWeeks(grid) {
		if c.opts.ShowWeekNumbers() {
			// ISO week of the row's first cell; Monday-anchored regardless
			// of the configured week start.
			wk := datemath.ISOWeek(week[0].Date(time.UTC))
			b.WriteString(calendarWeekNumStyle.Render(fmt.Sprintf("%2d", wk)))
			b.WriteString("  ")
		}
		for _, cell := range week {
			b.WriteString(c.renderCell(cell, now))
		}
		b.WriteString("\n")
	}

	if c.opts.ShowTodayButton() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, calendarActionStyle.Render("t: today")))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCell styles one grid cell. Style priority: selected, then today,
// then highlight; the cursor is a background so it composes with the rest.
func (c *Calendar) renderCell(cell calendar.Day, now time.Time) string {
	text := fmt.Sprintf("%2d ", cell.Day)
	date := cell.Date(time.Local)

	style := calendarDayStyle
	switch {
	case !cell.CurrentMonth:
		style = calendarFillerStyle
	case datemath.IsDisabled(date, c.opts.Constraints):
		style = calendarDisabledStyle
	case c.opts.Value != nil && datemath.SameDay(date, *c.opts.Value):
		style = calendarSelectedStyle
	case datemath.SameDay(date, now):
		style = calendarTodayStyle
	case c.isHighlighted(date):
		style = calendarHighlightStyle
	}

	if cell.CurrentMonth && c.view.Mode == calendar.ModeDays && cell.Day == c.cursor {
		style = style.Inherit(calendarCursorStyle)
	}

	return style.Render(text)
}

func (c *Calendar) isHighlighted(date time.Time) bool {
	for _, h := range c.opts.Highlights {
		if datemath.SameDay(date, h) {
			return true
		}
	}
	return false
}

func (c *Calendar) viewMonths() string {
	loc := c.opts.Loc()
	width := calendar.GridColumns * dayCellWidth

	var b strings.Builder
	title := fmt.Sprintf("%d", c.view.Year)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, calendarTitleStyle.Render(title)))
	b.WriteString("\n")

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			m := row*3 + col
			label := fmt.Sprintf(" %-4s", loc.MonthAbbrev(m))
			style := calendarDayStyle
			if m == c.view.Month {
				style = calendarTodayStyle
			}
			if m == c.cursor {
				style = calendarSelectedStyle
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *Calendar) viewYears() string {
	width := calendar.GridColumns * dayCellWidth
	page := c.view.YearsPage()

	var b strings.Builder
	title := fmt.Sprintf("%d – %d", page, page+calendar.YearsPageSize-1)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, calendarTitleStyle.Render(title)))
	b.WriteString("\n")

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			year := page + i
			label := fmt.Sprintf(" %-5d", year)
			style := calendarDayStyle
			if year == c.view.Year {
				style = calendarTodayStyle
			}
			if i == c.cursor {
				style = calendarSelectedStyle
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
