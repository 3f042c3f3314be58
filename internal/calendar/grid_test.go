package calendar

import (
	"testing"
	"time"

	"github.com/rustpress-net/almanac/internal/datemath"
)

func TestBuildGridAlwaysFortyTwoCells(t *testing.T) {
	for year := 1999; year <= 2030; year += 7 {
		for month := 0; month < 12; month++ {
			for firstDay := 0; firstDay < 7; firstDay++ {
				grid := BuildGrid(year, month, firstDay)
				if len(grid) != GridSize {
					t.Fatalf("BuildGrid(%d, %d, %d) has %d cells, want %d",
						year, month, firstDay, len(grid), GridSize)
				}
			}
		}
	}
}

func TestBuildGridFirstCurrentCellColumn(t *testing.T) {
	for _, year := range []int{2020, 2023, 2024, 2025} {
		for month := 0; month < 12; month++ {
			for firstDay := 0; firstDay < 7; firstDay++ {
				grid := BuildGrid(year, month, firstDay)

				idx := -1
				for i, cell := range grid {
					if cell.CurrentMonth {
						idx = i
						break
					}
				}
				if idx < 0 {
					t.Fatalf("grid (%d, %d, %d) has no current-month cell", year, month, firstDay)
				}

				want := (datemath.FirstWeekdayOfMonth(year, month) - firstDay + 7) % 7
				if idx%GridColumns != want {
					t.Errorf("grid (%d, %d, %d): first current cell at column %d, want %d",
						year, month, firstDay, idx%GridColumns, want)
				}
				if idx != want {
					t.Errorf("grid (%d, %d, %d): lead count %d, want %d",
						year, month, firstDay, idx, want)
				}
			}
		}
	}
}

func TestBuildGridJanuary2024(t *testing.T) {
	// Jan 1 2024 is a Monday: with a Sunday week start the grid opens with
	// a single December filler cell and closes with Feb 1-10 fillers.
	grid := BuildGrid(2024, 0, 0)

	first := grid[0]
	if first.Day != 31 || first.Month != 11 || first.Year != 2023 || first.CurrentMonth {
		t.Errorf("first cell = %+v, want Dec 31 2023 filler", first)
	}

	if grid[1].Day != 1 || !grid[1].CurrentMonth {
		t.Errorf("second cell = %+v, want Jan 1 2024", grid[1])
	}

	last := grid[GridSize-1]
	if last.Day != 10 || last.Month != 1 || last.Year != 2024 || last.CurrentMonth {
		t.Errorf("last cell = %+v, want Feb 10 2024 filler", last)
	}

	trailing := 0
	for _, cell := range grid {
		if cell.Month == 1 {
			trailing++
		}
	}
	if trailing != 10 {
		t.Errorf("got %d February filler cells, want 10", trailing)
	}
}

func TestBuildGridYearBoundaries(t *testing.T) {
	// December grids lead into January of the next year...
	grid := BuildGrid(2024, 11, 0)
	last := grid[GridSize-1]
	if last.Month != 0 || last.Year != 2025 {
		t.Errorf("December grid trailing cell = %+v, want January 2025", last)
	}

	// ...and January grids lead out of December of the previous year.
	grid = BuildGrid(2024, 0, 1)
	first := grid[0]
	if first.Month != 11 || first.Year != 2023 {
		t.Errorf("January grid leading cell = %+v, want December 2023", first)
	}
}

func TestBuildGridFullLeadWeek(t *testing.T) {
	// September 2024 starts on Sunday; with a Monday week start the lead is
	// six filler cells.
	grid := BuildGrid(2024, 8, 1)
	for i := 0; i < 6; i++ {
		if grid[i].CurrentMonth {
			t.Fatalf("cell %d should be filler, got %+v", i, grid[i])
		}
	}
	if grid[6].Day != 1 || !grid[6].CurrentMonth {
		t.Errorf("cell 6 = %+v, want Sep 1 2024", grid[6])
	}
}

func TestGridCellDateAndWeekday(t *testing.T) {
	cell := Day{Day: 15, Month: 2, Year: 2024, CurrentMonth: true}

	d := cell.Date(time.UTC)
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("Date() = %v, want 2024-03-15", d)
	}
	if cell.Weekday() != 5 {
		t.Errorf("Weekday() = %d, want 5 (Friday)", cell.Weekday())
	}
}

func TestISOWeekInvariantUnderWeekStart(t *testing.T) {
	// The ISO week shown for a date must not move when the display week
	// start changes; only the grid layout does.
	target := time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC)
	want := datemath.ISOWeek(target)

	for firstDay := 0; firstDay < 7; firstDay++ {
		grid := BuildGrid(2024, 0, firstDay)
		for _, cell := range grid {
			if cell.CurrentMonth && cell.Day == 4 {
				if got := datemath.ISOWeek(cell.Date(time.UTC)); got != want {
					t.Errorf("firstDay=%d: ISO week = %d, want %d", firstDay, got, want)
				}
			}
		}
	}
}

func TestGridWeeks(t *testing.T) {
	weeks := GridWeeks(BuildGrid(2024, 0, 0))
	if len(weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(weeks))
	}
	for i, week := range weeks {
		if len(week) != GridColumns {
			t.Errorf("week %d has %d cells, want %d", i, len(week), GridColumns)
		}
	}
}
