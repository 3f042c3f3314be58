package datemath

import (
	"testing"
	"time"

	"github.com/rustpress-net/almanac/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestFormatTokens(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	en := locale.Get("en")

	tests := []struct {
		template string
		want     string
	}{
		{"yyyy-MM-dd", "2024-03-05"},
		{"d/M/yyyy", "5/3/2024"},
		{"dd.MM.yy", "05.03.24"},
		{"MMMM d, yyyy", "March 5, 2024"},
		{"MMM d", "Mar 5"},
		{"d MMMM", "5 March"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(d, tt.template, en))
		})
	}
}

func TestFormatUnknownTokensPassThrough(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "week of 2024", Format(d, "week of yyyy", locale.Get("en")))
	assert.Equal(t, "2024?03!05", Format(d, "yyyy?MM!dd", locale.Get("en")))
}

func TestFormatZeroDate(t *testing.T) {
	assert.Equal(t, "", Format(time.Time{}, "yyyy-MM-dd", locale.Get("en")))
}

func TestFormatLocalizedMonthNames(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "März 2024", Format(d, "MMMM yyyy", locale.Get("de")))
	assert.Equal(t, "mars 2024", Format(d, "MMMM yyyy", locale.Get("fr")))
}

func TestFormatDefaults(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	// Nil locale and empty template fall back to English and the default
	// template rather than failing.
	assert.Equal(t, "2024-03-05", Format(d, "", nil))
}

func TestFormatCenturyPadding(t *testing.T) {
	d := time.Date(2005, time.January, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "05", Format(d, "yy", locale.Get("en")))
	assert.Equal(t, "2005", Format(d, "yyyy", locale.Get("en")))
}
