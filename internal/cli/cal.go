package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/locale"
	"github.com/spf13/cobra"
)

var (
	calWeekNumbersFlag bool
	calFirstDayFlag    int
	calLocaleFlag      string
)

// calCmd prints a month grid to stdout
var calCmd = &cobra.Command{
	Use:   "cal [month] [year]",
	Short: "Print a month calendar",
	Long:  "Print the calendar grid for a month (1-12). Defaults to the current month.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year := now.Year()
		month := int(now.Month())

		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = m
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstDay := calFirstDayFlag
		if !cmd.Flags().Changed("first-day") {
			firstDay = settings.FirstDayOfWeek
		}
		if firstDay < 0 || firstDay > 6 {
			return fmt.Errorf("first-day must be 0..6 (0=Sunday)")
		}

		tag := calLocaleFlag
		if tag == "" {
			tag = settings.Locale
		}

		fmt.Print(renderMonth(year, month-1, firstDay, locale.Get(tag), calWeekNumbersFlag, now))
		return nil
	},
}

func init() {
	calCmd.Flags().BoolVarP(&calWeekNumbersFlag, "week-numbers", "w", false, "show ISO week numbers")
	calCmd.Flags().IntVar(&calFirstDayFlag, "first-day", 0, "first day of week (0=Sunday..6=Saturday)")
	calCmd.Flags().StringVar(&calLocaleFlag, "locale", "", "locale tag for month and weekday names")
}

// renderMonth builds the plain-text month grid used by the cal command.
func renderMonth(year, month, firstDay int, loc *locale.Locale, weekNumbers bool, today time.Time) string {
	grid := calendar.BuildGrid(year, month, firstDay)

	width := calendar.GridColumns * 3
	if weekNumbers {
		width += 4
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %d", loc.MonthName(month), year)
	pad := (width - len(title)) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteString("\n")

	if weekNumbers {
		b.WriteString("    ")
	}
	for i := 0; i < calendar.GridColumns; i++ {
		fmt.Fprintf(&b, "%-3s", loc.WeekdayAbbrev((firstDay+i)%7))
	}
	b.WriteString("\n")

	for _, week := range calendar.GridWeeks(grid) {
		if weekNumbers {
			fmt.Fprintf(&b, "%2d  ", datemath.ISOWeek(week[0].Date(time.UTC)))
		}
		for _, cell := range week {
			switch {
			case !cell.CurrentMonth:
				b.WriteString("   ")
			case cell.Day == today.Day() && cell.Month == int(today.Month())-1 && cell.Year == today.Year():
				fmt.Fprintf(&b, "%2d*", cell.Day)
			default:
				fmt.Fprintf(&b, "%2d ", cell.Day)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
