// Package main is the entry point for the table-calendar demo application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thiepcong/table-calendar/calendar"
	"github.com/thiepcong/table-calendar/internal/config"
	"github.com/thiepcong/table-calendar/internal/tui"
)

const version = "0.1.0"

const helpText = `table-calendar - Terminal calendar widget demo with Vim keybindings

USAGE:
    table-calendar [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --month         Start as a month picker
    --quarter       Start as a quarter picker
    --year          Start as a year picker
    --range         Start with range selection on

CONFIGURATION:
    Config file: ~/.config/table-calendar/config.yaml

    Run 'table-calendar --init' to create a commented template, then edit
    the navigation window, week start, formats and events to taste.

KEYBINDINGS:
    Calendar:
        h/l j/k     Move by day / week (or month, quarter, year cells)
        [ / ]       Previous / next page
        t           Jump to today
        enter       Select the highlighted cell
        space       Long-press the highlighted cell
        v / V       Tap / long-press the header
        + / -       Smaller / larger day-grid format

    Application:
        g           Go to a date
        y           Copy the selection to the clipboard
        n           Notify the highlighted day's events
        q           Quit
`

const configTemplate = `# table-calendar configuration
# Location: ~/.config/table-calendar/config.yaml

calendar:
  # Navigation window. Days outside it are shown but disabled.
  first_day: 2025-01-01
  last_day: 2027-12-31

  # Day highlighted at startup. Defaults to today when omitted.
  # focused_day: 2026-06-15

  # "sunday" or "monday".
  week_start: sunday

  # Weekday names. Defaults to saturday and sunday.
  # weekend_days: [friday, saturday]

  # Swipe cycle, largest first: any of month, twoweeks, week.
  formats: [month, twoweeks, week]

  # Range selection: disabled, off, "on" or enforced.
  range_mode: "off"

  # Narrow the picker: none, month, quarter or year.
  restricted: none

  page_jumping: false
  hide_outside_days: false

ui:
  # Desktop notifications for days with events.
  notifications: true

# Event titles keyed by date.
# events:
#   2026-06-15:
#     - dentist
#     - standup
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		pickMonth   bool
		pickQuarter bool
		pickYear    bool
		rangeOn     bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&pickMonth, "month", false, "Start as a month picker")
	flag.BoolVar(&pickQuarter, "quarter", false, "Start as a quarter picker")
	flag.BoolVar(&pickYear, "year", false, "Start as a year picker")
	flag.BoolVar(&rangeOn, "range", false, "Start with range selection on")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("table-calendar version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	// Flags override the config's picker restriction and range mode.
	restriction := calendar.RestrictNone
	switch {
	case pickMonth:
		restriction = calendar.RestrictMonth
	case pickQuarter:
		restriction = calendar.RestrictQuarter
	case pickYear:
		restriction = calendar.RestrictYear
	}

	return runApp(restriction, rangeOn)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp loads the configuration, builds the calendar and runs the TUI.
func runApp(restriction calendar.Restriction, rangeOn bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if restriction != calendar.RestrictNone {
		opts.Restriction = restriction
	}
	if rangeOn {
		opts.RangeMode = calendar.RangeToggledOn
	}

	cal, err := calendar.New(opts)
	if err != nil {
		return fmt.Errorf("failed to build calendar: %w", err)
	}

	app := tui.NewApp(cal, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
