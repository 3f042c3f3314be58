// Package calendar provides the render-agnostic core of the date-picker
// family: the fixed 42-cell month grid and the day/month/year view state
// machine. Rendering lives in internal/tui/components.
package calendar

import (
	"time"

	"github.com/rustpress-net/almanac/internal/datemath"
)

// GridSize is the fixed cell count of a month grid: 6 rows of 7 columns,
// so the rendered surface keeps a constant height across navigation.
const GridSize = 42

// GridColumns is the number of weekday columns.
const GridColumns = 7

// Day is one grid cell. Cells carry their own (year, month) so constraint
// checks, selection, and week numbers work per cell without referring back
// to the viewed month; filler cells belong to the adjacent months.
type Day struct {
	Day          int
	Month        int // 0-indexed
	Year         int
	CurrentMonth bool
}

// Date returns the cell's day at midnight in the given location.
func (d Day) Date(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the cell's weekday, 0=Sunday.
func (d Day) Weekday() int {
	return int(d.Date(time.UTC).Weekday())
}

// BuildGrid produces the 42-cell grid for a 0-indexed month. The first
// (firstWeekday - firstDayOfWeek + 7) mod 7 cells are tail days of the
// previous month, then the full current month, then leading days of the
// next month up to 42. firstDayOfWeek rotates the column layout (0=Sunday).
func BuildGrid(year, month, firstDayOfWeek int) []Day {
	grid := make([]Day, 0, GridSize)

	firstWeekday := datemath.FirstWeekdayOfMonth(year, month)
	lead := (firstWeekday - firstDayOfWeek + GridColumns) % GridColumns

	prevYear, prevMonth := year, month-1
	if prevMonth < 0 {
		prevMonth = 11
		prevYear--
	}
	nextYear, nextMonth := year, month+1
	if nextMonth > 11 {
		nextMonth = 0
		nextYear++
	}

	daysInPrev := datemath.DaysInMonth(prevYear, prevMonth)
	for i := 0; i < lead; i++ {
		grid = append(grid, Day{
			Day:   daysInPrev - lead + 1 + i,
			Month: prevMonth,
			Year:  prevYear,
		})
	}

	daysInCur := datemath.DaysInMonth(year, month)
	for day := 1; day <= daysInCur; day++ {
		grid = append(grid, Day{
			Day:          day,
			Month:        month,
			Year:         year,
			CurrentMonth: true,
		})
	}

	for day := 1; len(grid) < GridSize; day++ {
		grid = append(grid, Day{
			Day:   day,
			Month: nextMonth,
			Year:  nextYear,
		})
	}

	return grid
}

// GridWeeks slices a grid into its 6 rows.
func GridWeeks(grid []Day) [][]Day {
	weeks := make([][]Day, 0, GridSize/GridColumns)
	for i := 0; i+GridColumns <= len(grid); i += GridColumns {
		weeks = append(weeks, grid[i:i+GridColumns])
	}
	return weeks
}
