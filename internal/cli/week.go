package cli

import (
	"fmt"
	"time"

	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/spf13/cobra"
)

// weekCmd prints the ISO week number for a date
var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Print the ISO week number",
	Long:  "Print the ISO-8601 week number for a date (YYYY-MM-DD). Defaults to today.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()

		if len(args) == 1 {
			parsed, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
			}
			date = parsed
		}

		fmt.Printf("%d\n", datemath.ISOWeek(date))
		return nil
	},
}
