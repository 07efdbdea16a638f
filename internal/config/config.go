// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thiepcong/table-calendar/calendar"
	"github.com/thiepcong/table-calendar/date"
)

// Config represents the application configuration.
type Config struct {
	Calendar CalendarConfig      `yaml:"calendar"`
	UI       UIConfig            `yaml:"ui"`
	Events   map[string][]string `yaml:"events,omitempty"`
}

// CalendarConfig holds the widget settings. Enumerated fields are kept as
// strings in the file and parsed when building calendar.Options, so a typo
// fails loudly at startup instead of silently picking a default.
type CalendarConfig struct {
	FirstDay   date.Date `yaml:"first_day"`
	LastDay    date.Date `yaml:"last_day"`
	FocusedDay date.Date `yaml:"focused_day,omitempty"`

	// WeekStart is "sunday" or "monday".
	WeekStart string `yaml:"week_start,omitempty"`

	// WeekendDays are weekday names; empty means Saturday and Sunday.
	WeekendDays []string `yaml:"weekend_days,omitempty"`

	// Formats is the swipe cycle, largest to smallest: any of "month",
	// "twoweeks", "week".
	Formats []string `yaml:"formats,omitempty"`

	// RangeMode is "disabled", "off", "on" or "enforced".
	RangeMode string `yaml:"range_mode,omitempty"`

	// Restricted narrows the picker: "none", "month", "quarter" or "year".
	Restricted string `yaml:"restricted,omitempty"`

	PageJumping     bool   `yaml:"page_jumping"`
	HideOutsideDays bool   `yaml:"hide_outside_days"`
	Locale          string `yaml:"locale,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	// Notifications enables desktop notifications for days with events.
	Notifications bool `yaml:"notifications"`
}

// DefaultConfig returns a new Config with default values: a three-year
// navigation window centered on the current year.
func DefaultConfig() *Config {
	today := date.Today()
	return &Config{
		Calendar: CalendarConfig{
			FirstDay:  date.New(today.Year-1, time.January, 1),
			LastDay:   date.New(today.Year+1, time.December, 31),
			WeekStart: "sunday",
		},
		UI: UIConfig{
			Notifications: true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "table-calendar")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Options translates the file configuration into widget options. The static
// events map becomes the widget's event loader.
func (c *Config) Options() (calendar.Options, error) {
	opts := calendar.Options{
		Locale:          c.Calendar.Locale,
		FirstDay:        c.Calendar.FirstDay,
		LastDay:         c.Calendar.LastDay,
		FocusedDay:      c.Calendar.FocusedDay,
		PageJumping:     c.Calendar.PageJumping,
		HideOutsideDays: c.Calendar.HideOutsideDays,
	}

	if c.Calendar.WeekStart != "" {
		wd, err := parseWeekday(c.Calendar.WeekStart)
		if err != nil {
			return calendar.Options{}, err
		}
		opts.StartingWeekday = wd
	}

	for _, name := range c.Calendar.WeekendDays {
		wd, err := parseWeekday(name)
		if err != nil {
			return calendar.Options{}, err
		}
		opts.WeekendDays = append(opts.WeekendDays, wd)
	}

	for _, name := range c.Calendar.Formats {
		f, err := parseFormat(name)
		if err != nil {
			return calendar.Options{}, err
		}
		opts.AvailableFormats = append(opts.AvailableFormats, f)
	}
	if len(opts.AvailableFormats) > 0 {
		opts.Format = opts.AvailableFormats[0]
	}

	if c.Calendar.RangeMode != "" {
		rm, err := parseRangeMode(c.Calendar.RangeMode)
		if err != nil {
			return calendar.Options{}, err
		}
		opts.RangeMode = rm
	}

	if c.Calendar.Restricted != "" {
		r, err := parseRestriction(c.Calendar.Restricted)
		if err != nil {
			return calendar.Options{}, err
		}
		opts.Restriction = r
	}

	if len(c.Events) > 0 {
		events := make(map[date.Date][]string, len(c.Events))
		for key, titles := range c.Events {
			d, err := date.Parse(key)
			if err != nil {
				return calendar.Options{}, fmt.Errorf("invalid event date %q: %w", key, err)
			}
			events[d] = titles
		}
		opts.EventLoader = func(d date.Date) []string {
			return events[d]
		}
	}

	return opts, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func parseFormat(s string) (calendar.Format, error) {
	switch strings.ToLower(s) {
	case "month":
		return calendar.FormatMonth, nil
	case "twoweeks", "two_weeks", "2weeks":
		return calendar.FormatTwoWeeks, nil
	case "week":
		return calendar.FormatWeek, nil
	}
	return 0, fmt.Errorf("unknown calendar format %q", s)
}

func parseRangeMode(s string) (calendar.RangeMode, error) {
	switch strings.ToLower(s) {
	case "disabled":
		return calendar.RangeDisabled, nil
	case "off":
		return calendar.RangeToggledOff, nil
	case "on":
		return calendar.RangeToggledOn, nil
	case "enforced":
		return calendar.RangeEnforced, nil
	}
	return 0, fmt.Errorf("unknown range mode %q", s)
}

func parseRestriction(s string) (calendar.Restriction, error) {
	switch strings.ToLower(s) {
	case "none":
		return calendar.RestrictNone, nil
	case "month":
		return calendar.RestrictMonth, nil
	case "quarter":
		return calendar.RestrictQuarter, nil
	case "year":
		return calendar.RestrictYear, nil
	}
	return 0, fmt.Errorf("unknown picker restriction %q", s)
}
