package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustpress-net/almanac/internal/config"
	"github.com/rustpress-net/almanac/internal/logger"
	"github.com/rustpress-net/almanac/internal/storage"
	"github.com/rustpress-net/almanac/internal/tui"
	"github.com/spf13/cobra"
)

var (
	settings config.Settings
	markRepo *storage.MarkRepository
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "alm",
	Short: "Almanac - terminal date picker",
	Long:  `A terminal calendar and date-picker toolkit: interactive picker, inline calendar, and a mini month view, with marked dates and ISO week numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the picker demo TUI
		model := tui.NewModel(settings, markRepo)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	},
}

func init() {
	cobra.OnInitialize(initServices)

	RootCmd.AddCommand(calCmd)
	RootCmd.AddCommand(weekCmd)
	RootCmd.AddCommand(marksCmd)
}

// initServices loads settings and opens the marks database. Either may fail
// without aborting: the picker works with defaults and without marks.
func initServices() {
	var err error

	settings, err = config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default settings: %v\n", err)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		logger.Warn("cli: no data directory, marks disabled", "error", err)
		return
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		logger.Warn("cli: database unavailable, marks disabled", "error", err)
		return
	}

	markRepo = storage.NewMarkRepository(db)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
