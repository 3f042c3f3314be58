package calendar

import (
	"time"

	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/locale"
)

// Options is the shared configuration surface of the picker family. The
// zero value is usable; feature toggles default to on through the
// ShowWeekNumbers/ShowTodayButton/ShowClearButton accessors, which treat
// nil as true.
type Options struct {
	Value    *time.Time
	OnChange func(*time.Time)

	Constraints datemath.Constraints

	// Highlights are days rendered with the highlight state (below selection
	// and today in priority). The demo shell feeds marked dates in here.
	Highlights []time.Time

	Locale         string
	FirstDayOfWeek int // 0=Sunday..6=Saturday
	Format         string

	WeekNumbers *bool
	TodayButton *bool
	ClearButton *bool

	Inline   bool
	Disabled bool
	ReadOnly bool
}

// Loc resolves the configured locale, falling back to English.
func (o Options) Loc() *locale.Locale {
	return locale.Get(o.Locale)
}

// WeekStart returns the configured first day of week normalized to 0..6.
func (o Options) WeekStart() int {
	return ((o.FirstDayOfWeek % 7) + 7) % 7
}

// DisplayFormat returns the configured format template or the default.
func (o Options) DisplayFormat() string {
	if o.Format == "" {
		return datemath.DefaultFormat
	}
	return o.Format
}

// ShowWeekNumbers reports whether the ISO week column is enabled (default on).
func (o Options) ShowWeekNumbers() bool {
	return o.WeekNumbers == nil || *o.WeekNumbers
}

// ShowTodayButton reports whether the jump-to-today action is enabled (default on).
func (o Options) ShowTodayButton() bool {
	return o.TodayButton == nil || *o.TodayButton
}

// ShowClearButton reports whether the clear action is enabled (default on).
func (o Options) ShowClearButton() bool {
	return o.ClearButton == nil || *o.ClearButton
}
