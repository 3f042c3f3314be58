package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewView(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	v := NewView(now)

	assert.Equal(t, 2024, v.Year)
	assert.Equal(t, 2, v.Month)
	assert.Equal(t, ModeDays, v.Mode)
}

func TestMonthNavigationCarry(t *testing.T) {
	v := View{Year: 2024, Month: 0}

	v = v.PrevMonth()
	assert.Equal(t, 2023, v.Year)
	assert.Equal(t, 11, v.Month)

	v = v.NextMonth()
	assert.Equal(t, 2024, v.Year)
	assert.Equal(t, 0, v.Month)
}

func TestNextPrevMonthRoundTrip(t *testing.T) {
	for month := 0; month < 12; month++ {
		v := View{Year: 2024, Month: month}
		back := v.NextMonth().PrevMonth()
		assert.Equal(t, v, back, "month %d", month)
	}
}

func TestYearNavigation(t *testing.T) {
	v := View{Year: 2024, Month: 5}

	v = v.NextYear()
	assert.Equal(t, View{Year: 2025, Month: 5}, v)

	v = v.PrevYear()
	assert.Equal(t, View{Year: 2024, Month: 5}, v)
}

func TestSelectMonthReturnsToDays(t *testing.T) {
	v := View{Year: 2024, Month: 0, Mode: ModeMonths}

	v = v.SelectMonth(7)
	assert.Equal(t, 7, v.Month)
	assert.Equal(t, ModeDays, v.Mode)
}

func TestSelectMonthIgnoresOutOfRange(t *testing.T) {
	v := View{Year: 2024, Month: 3, Mode: ModeMonths}

	v = v.SelectMonth(12)
	assert.Equal(t, 3, v.Month)
	assert.Equal(t, ModeDays, v.Mode)
}

func TestSelectYearLeadsIntoMonths(t *testing.T) {
	v := View{Year: 2024, Month: 4, Mode: ModeYears}

	v = v.SelectYear(2030)
	assert.Equal(t, 2030, v.Year)
	assert.Equal(t, 4, v.Month)
	assert.Equal(t, ModeMonths, v.Mode)
}

func TestToggleMode(t *testing.T) {
	v := View{Year: 2024, Month: 0}

	v = v.ToggleMode(ModeMonths)
	assert.Equal(t, ModeMonths, v.Mode)

	// Re-toggling the active mode returns to days.
	v = v.ToggleMode(ModeMonths)
	assert.Equal(t, ModeDays, v.Mode)

	v = v.ToggleMode(ModeYears)
	assert.Equal(t, ModeYears, v.Mode)

	// Toggling the other picker mode switches directly.
	v = v.ToggleMode(ModeMonths)
	assert.Equal(t, ModeMonths, v.Mode)
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	v := View{Year: 1999, Month: 0, Mode: ModeYears}

	v = v.Today(now)
	assert.Equal(t, View{Year: 2024, Month: 5, Mode: ModeDays}, v)
}

func TestYearsModePagesByTwelve(t *testing.T) {
	v := View{Year: 2024, Month: 0, Mode: ModeYears}

	assert.Equal(t, 2036, v.NextMonth().Year)
	assert.Equal(t, 2012, v.PrevMonth().Year)
	assert.Equal(t, 2036, v.NextYear().Year)
	assert.Equal(t, 2012, v.PrevYear().Year)
}

func TestYearsPage(t *testing.T) {
	assert.Equal(t, 2016, View{Year: 2024}.YearsPage())
	assert.Equal(t, 2016, View{Year: 2016}.YearsPage())
	assert.Equal(t, 2016, View{Year: 2027}.YearsPage())
	assert.Equal(t, 2028, View{Year: 2028}.YearsPage())
}

func TestNavigationNeverProducesInvalidMonth(t *testing.T) {
	v := View{Year: 2024, Month: 0}
	for i := 0; i < 100; i++ {
		v = v.PrevMonth()
		assert.GreaterOrEqual(t, v.Month, 0)
		assert.LessOrEqual(t, v.Month, 11)
	}
	for i := 0; i < 250; i++ {
		v = v.NextMonth()
		assert.GreaterOrEqual(t, v.Month, 0)
		assert.LessOrEqual(t, v.Month, 11)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "days", ModeDays.String())
	assert.Equal(t, "months", ModeMonths.String())
	assert.Equal(t, "years", ModeYears.String())
}
