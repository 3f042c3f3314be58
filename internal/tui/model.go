package tui

import (
	stdtime "time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rustpress-net/almanac/internal/calendar"
	"github.com/rustpress-net/almanac/internal/config"
	"github.com/rustpress-net/almanac/internal/datemath"
	"github.com/rustpress-net/almanac/internal/logger"
	"github.com/rustpress-net/almanac/internal/storage"
	"github.com/rustpress-net/almanac/internal/sync"
	"github.com/rustpress-net/almanac/internal/tui/components"
)

// Section represents the focusable areas of the demo shell
type Section int

const (
	SectionPicker Section = iota
	SectionInline
	SectionMini
	SectionCount // Keep this last to get the count
)

const (
	SectionNamePicker = "Picker"
	SectionNameInline = "Calendar"
	SectionNameMini   = "Mini"
)

// sectionName returns the display name for a section
func sectionName(s Section) string {
	switch s {
	case SectionPicker:
		return SectionNamePicker
	case SectionInline:
		return SectionNameInline
	case SectionMini:
		return SectionNameMini
	default:
		return "Unknown"
	}
}

var sectionTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("245"))

// Model represents the main TUI state. The selected date is owned here and
// pushed down into the components (controlled value); components only
// propose changes via DateSelectedMsg.
type Model struct {
	settings config.Settings
	marks    *storage.MarkRepository
	watcher  *sync.Watcher

	selected *stdtime.Time

	// Components
	picker    *components.DatePicker
	inlineCal *components.Calendar
	mini      *components.MiniCalendar
	statusBar *components.StatusBar

	keys     keyMap
	help     help.Model
	helpMode bool
	focused  Section

	width  int
	height int
}

// NewModel creates a new TUI model from the loaded settings. The mark
// repository may be nil when the database is unavailable; the shell then
// runs without marked dates.
func NewModel(settings config.Settings, marks *storage.MarkRepository) *Model {
	watcher, err := sync.NewWatcher()
	if err != nil {
		// Run without live settings reload
		watcher = nil
	}

	sb := components.NewStatusBar()
	sb.SetSection(SectionNamePicker)

	m := &Model{
		settings:  settings,
		marks:     marks,
		watcher:   watcher,
		statusBar: sb,
		keys:      defaultKeyMap(),
		help:      help.New(),
		focused:   SectionPicker,
	}

	opts := m.buildOptions()
	m.picker = components.NewDatePicker(opts)
	m.picker.Focus()

	inlineOpts := opts
	inlineOpts.Inline = true
	m.inlineCal = components.NewCalendar(inlineOpts)

	miniOpts := opts
	m.mini = components.NewMiniCalendar(miniOpts)

	return m
}

// buildOptions maps the settings file onto the component configuration.
func (m *Model) buildOptions() calendar.Options {
	return calendar.Options{
		Value: m.selected,
		Constraints: datemath.Constraints{
			DisabledWeekdays: m.settings.DisabledWeekdays,
		},
		Locale:         m.settings.Locale,
		FirstDayOfWeek: m.settings.FirstDayOfWeek,
		Format:         m.settings.Format,
		WeekNumbers:    m.settings.ShowWeekNumbers,
		TodayButton:    m.settings.ShowTodayButton,
		ClearButton:    m.settings.ShowClearButton,
	}
}

// applyOptions pushes the current settings, selection, and marks into all
// three components.
func (m *Model) applyOptions(marks []storage.Mark) {
	opts := m.buildOptions()
	for _, mark := range marks {
		if mark.Disabled {
			opts.Constraints.DisabledDates = append(opts.Constraints.DisabledDates, mark.Date)
		} else {
			opts.Highlights = append(opts.Highlights, mark.Date)
		}
	}

	m.picker.SetOptions(opts)

	inlineOpts := opts
	inlineOpts.Inline = true
	m.inlineCal.SetOptions(inlineOpts)

	m.mini.SetOptions(opts)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadMarks()}

	if m.watcher != nil {
		if err := m.watcher.Start(); err == nil {
			cmds = append(cmds, m.waitForSettingsChange())
		} else {
			logger.Warn("tui: settings watcher failed to start", "error", err)
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case components.DateSelectedMsg:
		return m.handleDateSelected(msg)

	case components.DateClearedMsg:
		m.selected = nil
		m.syncSelection()
		return m, nil

	case marksLoadedMsg:
		m.applyOptions(msg.marks)
		return m, nil

	case settingsChangedMsg:
		m.settings = msg.settings
		m.applyOptions(nil)
		return m, tea.Batch(m.loadMarks(), m.waitForSettingsChange())

	case errMsg:
		logger.Error("tui: command failed", "error", msg.err)
		return m, nil
	}

	// Pass everything else to the picker so deferred popover messages
	// arrive even while another section is focused.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleWindowSize recalculates the layout and the popover viewport.
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	dims := CalculatePaneDimensions(m.width, m.height)
	m.statusBar.SetWidth(m.width)
	m.picker.SetAnchor(dims.PickerAnchorX, dims.PickerAnchorY)
	m.picker.SetViewport(m.width, m.height)
	m.help.Width = m.width

	return m, nil
}

// handleDateSelected adopts a proposed date as the new selection.
func (m *Model) handleDateSelected(msg components.DateSelectedMsg) (tea.Model, tea.Cmd) {
	date := msg.Date
	m.selected = &date
	m.syncSelection()

	// Let the picker close its popover on selection.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// syncSelection pushes the owned selection into all components and the
// status bar.
func (m *Model) syncSelection() {
	m.picker.SetValue(m.selected)
	m.inlineCal.SetValue(m.selected)
	m.mini.SetValue(m.selected)

	display := ""
	if m.selected != nil {
		display = datemath.Format(*m.selected, m.settings.Format, nil)
	}
	m.statusBar.SetValue(display)
}

// View renders the demo shell
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Terminal too small: resize to at least 60x20")
	}

	if m.helpMode {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.help.FullHelpView(m.keys.FullHelp()))
	}

	// A modal popover replaces the base content, painted at its clamped
	// position.
	if m.picker.IsOpen() {
		pos := m.picker.PopoverPosition()
		overlay := lipgloss.NewStyle().
			MarginLeft(pos.X).
			MarginTop(pos.Y).
			Render(m.picker.PopoverView())
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, overlay)
	}

	dims := CalculatePaneDimensions(m.width, m.height)

	pickerPane := m.renderSection(SectionPicker, dims.PickerWidth, dims.PaneHeight,
		sectionTitleStyle.Render("Date")+"\n\n"+m.picker.View())
	inlinePane := m.renderSection(SectionInline, dims.InlineWidth, dims.PaneHeight,
		m.inlineCal.View())
	miniPane := m.renderSection(SectionMini, dims.MiniWidth, dims.PaneHeight,
		m.mini.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, pickerPane, inlinePane, miniPane)

	m.statusBar.SetSection(sectionName(m.focused))
	status := m.statusBar.View()

	return content + "\n" + status + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// renderSection wraps pane content in a border, colored when focused.
func (m *Model) renderSection(section Section, width, height int, content string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(width - 2).
		Height(height - 4)
	if m.focused == section {
		style = style.BorderForeground(lipgloss.Color("39"))
	}
	return style.Render(content)
}
