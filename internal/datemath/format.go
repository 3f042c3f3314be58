package datemath

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustpress-net/almanac/internal/locale"
)

// Format tokens, longest first so "yyyy" wins over "yy" and "MMMM" over
// "MMM"/"MM"/"M" during the scan.
var formatTokens = []string{"yyyy", "MMMM", "MMM", "yy", "MM", "dd", "M", "d"}

// DefaultFormat is the display template used when none is configured.
const DefaultFormat = "yyyy-MM-dd"

// Format renders date through a token template: yyyy, yy, MMMM (full month
// name), MMM (abbreviated), MM, M, dd, d. Anything else passes through
// literally. A zero date yields the empty string. This is display-only;
// nothing in this package parses date text.
func Format(date time.Time, template string, loc *locale.Locale) string {
	if date.IsZero() {
		return ""
	}
	if loc == nil {
		loc = locale.Default()
	}
	if template == "" {
		template = DefaultFormat
	}

	year, month, day := date.Date()
	var b strings.Builder

	for i := 0; i < len(template); {
		token := ""
		for _, t := range formatTokens {
			if strings.HasPrefix(template[i:], t) {
				token = t
				break
			}
		}
		switch token {
		case "yyyy":
			fmt.Fprintf(&b, "%04d", year)
		case "yy":
			fmt.Fprintf(&b, "%02d", year%100)
		case "MMMM":
			b.WriteString(loc.MonthName(int(month) - 1))
		case "MMM":
			b.WriteString(loc.MonthAbbrev(int(month) - 1))
		case "MM":
			fmt.Fprintf(&b, "%02d", int(month))
		case "M":
			fmt.Fprintf(&b, "%d", int(month))
		case "dd":
			fmt.Fprintf(&b, "%02d", day)
		case "d":
			fmt.Fprintf(&b, "%d", day)
		default:
			b.WriteByte(template[i])
			i++
			continue
		}
		i += len(token)
	}

	return b.String()
}
