package calendar

import "time"

// Mode selects which navigation granularity a calendar is showing.
type Mode int

const (
	ModeDays Mode = iota
	ModeMonths
	ModeYears
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeDays:
		return "days"
	case ModeMonths:
		return "months"
	case ModeYears:
		return "years"
	default:
		return "unknown"
	}
}

// YearsPageSize is the number of years shown per page in years mode.
const YearsPageSize = 12

// View is the displayed (year, month) plus the active mode. Each calendar
// instance owns exactly one View; transitions are pure functions returning
// a new value, so navigation is unit-testable without a render harness.
// Every transition normalizes month through Gregorian carry, so no reachable
// View holds an invalid (year, month) pair.
type View struct {
	Year  int
	Month int // 0-indexed
	Mode  Mode
}

// NewView returns the initial view: now's year and month, days mode.
func NewView(now time.Time) View {
	return View{Year: now.Year(), Month: int(now.Month()) - 1, Mode: ModeDays}
}

// PrevMonth moves one month back, carrying into the previous year past
// January. In years mode it pages the year window back instead.
func (v View) PrevMonth() View {
	if v.Mode == ModeYears {
		v.Year -= YearsPageSize
		return v
	}
	v.Month--
	if v.Month < 0 {
		v.Month = 11
		v.Year--
	}
	return v
}

// NextMonth moves one month forward, carrying into the next year past
// December. In years mode it pages the year window forward instead.
func (v View) NextMonth() View {
	if v.Mode == ModeYears {
		v.Year += YearsPageSize
		return v
	}
	v.Month++
	if v.Month > 11 {
		v.Month = 0
		v.Year++
	}
	return v
}

// PrevYear moves one year back, month unchanged.
func (v View) PrevYear() View {
	if v.Mode == ModeYears {
		v.Year -= YearsPageSize
		return v
	}
	v.Year--
	return v
}

// NextYear moves one year forward, month unchanged.
func (v View) NextYear() View {
	if v.Mode == ModeYears {
		v.Year += YearsPageSize
		return v
	}
	v.Year++
	return v
}

// SelectMonth sets the month and drops from months mode back to days.
func (v View) SelectMonth(month int) View {
	if month >= 0 && month <= 11 {
		v.Month = month
	}
	v.Mode = ModeDays
	return v
}

// SelectYear sets the year and drops from years mode into months mode, so
// picking a year leads into picking a month.
func (v View) SelectYear(year int) View {
	v.Year = year
	v.Mode = ModeMonths
	return v
}

// ToggleMode switches between days and the requested picker mode.
// Re-toggling the mode that is already active returns to days.
func (v View) ToggleMode(target Mode) View {
	if v.Mode == target {
		v.Mode = ModeDays
	} else {
		v.Mode = target
	}
	return v
}

// Today resets the view to now's year and month in days mode.
func (v View) Today(now time.Time) View {
	v.Year = now.Year()
	v.Month = int(now.Month()) - 1
	v.Mode = ModeDays
	return v
}

// YearsPage returns the first year of the 12-year page containing the
// view's year.
func (v View) YearsPage() int {
	return v.Year - ((v.Year % YearsPageSize) + YearsPageSize) % YearsPageSize
}
