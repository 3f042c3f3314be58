package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	markLabelFlag    string
	markDisabledFlag bool
)

// marksCmd manages marked dates
var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "Manage marked dates",
	Long:  "List, add, and remove marked dates. Disabled marks are unselectable in the picker; the rest are highlighted.",
}

// marksListCmd lists all marks
var marksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marked dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if markRepo == nil {
			return fmt.Errorf("marks database unavailable")
		}

		marks, err := markRepo.ListMarks()
		if err != nil {
			return err
		}

		if len(marks) == 0 {
			fmt.Println("No marked dates.")
			return nil
		}

		for _, m := range marks {
			flag := " "
			if m.Disabled {
				flag = "x"
			}
			fmt.Printf("%s  [%s]  %-30s %s\n", m.Date.Format("2006-01-02"), flag, m.Label, m.ID)
		}
		return nil
	},
}

// marksAddCmd adds a mark, interactively when no date argument is given
var marksAddCmd = &cobra.Command{
	Use:   "add [date]",
	Short: "Add a marked date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if markRepo == nil {
			return fmt.Errorf("marks database unavailable")
		}

		var (
			dateStr  = ""
			label    = markLabelFlag
			disabled = markDisabledFlag
		)

		if len(args) == 1 {
			dateStr = args[0]
		} else {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Date (YYYY-MM-DD)").
						Value(&dateStr).
						Validate(func(s string) error {
							_, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
							return err
						}),
					huh.NewInput().
						Title("Label").
						Value(&label),
					huh.NewConfirm().
						Title("Disable selection on this date?").
						Value(&disabled),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("form cancelled: %w", err)
			}
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateStr), time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
		}

		mark, err := markRepo.AddMark(date, label, disabled)
		if err != nil {
			return err
		}

		fmt.Printf("Added mark %s on %s\n", mark.ID, mark.Date.Format("2006-01-02"))
		return nil
	},
}

// marksRmCmd removes a mark by ID
var marksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a marked date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if markRepo == nil {
			return fmt.Errorf("marks database unavailable")
		}
		if err := markRepo.DeleteMark(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed mark %s\n", args[0])
		return nil
	},
}

func init() {
	marksAddCmd.Flags().StringVarP(&markLabelFlag, "label", "l", "", "label for the mark")
	marksAddCmd.Flags().BoolVarP(&markDisabledFlag, "disabled", "d", false, "make the date unselectable")

	marksCmd.AddCommand(marksListCmd)
	marksCmd.AddCommand(marksAddCmd)
	marksCmd.AddCommand(marksRmCmd)
}
