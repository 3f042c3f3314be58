package datemath

import "time"

// Months are 0-indexed (0=January..11=December) throughout this package,
// matching the grid and view-state packages. time.Month is 1-indexed, so
// conversions go through monthOf.

func monthOf(month int) time.Month {
	return time.Month(month + 1)
}

// DaysInMonth returns the number of days in the given 0-indexed month.
// Day 0 of the following month normalizes to the last day of this one,
// which handles leap years without a separate rule.
func DaysInMonth(year, month int) int {
	return time.Date(year, monthOf(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the 1st of the month,
// 0=Sunday..6=Saturday. An out-of-range month rolls over into the adjacent
// year the same way time.Date normalizes it.
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, monthOf(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// SameDay reports whether a and b fall on the same calendar day.
// A zero value on either side is never the same day as anything.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// StartOfDay returns a new time at 00:00:00 on the same day, preserving the
// location. The input is never modified.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns a new time at the last nanosecond of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Constraints restricts which days are selectable. All fields are optional;
// the zero value disables nothing. The engine never mutates a Constraints
// value or the dates inside it.
type Constraints struct {
	MinDate          *time.Time
	MaxDate          *time.Time
	DisabledDates    []time.Time
	DisabledWeekdays []int // absolute weekday indices, 0=Sunday
}

// IsDisabled reports whether date may not be selected under c. Clauses are
// checked in order and short-circuit: below MinDate (truncated to start of
// day), above MaxDate (truncated to end of day), weekday disabled, or
// same-day equal to a disabled date. MinDate > MaxDate is not an error; it
// simply disables every day.
func IsDisabled(date time.Time, c Constraints) bool {
	if c.MinDate != nil && date.Before(StartOfDay(*c.MinDate)) {
		return true
	}
	if c.MaxDate != nil && date.After(EndOfDay(*c.MaxDate)) {
		return true
	}
	for _, wd := range c.DisabledWeekdays {
		if int(date.Weekday()) == wd {
			return true
		}
	}
	for _, d := range c.DisabledDates {
		if SameDay(date, d) {
			return true
		}
	}
	return false
}

// ISOWeek returns the ISO-8601 week number (1..53) for the date: the week
// containing the year's first Thursday is week 1, and weeks start on Monday
// regardless of any configured display week start.
func ISOWeek(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}
