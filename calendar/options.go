package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/thiepcong/table-calendar/date"
)

// LongPressAction selects what a long-press on an enabled day does.
type LongPressAction int

const (
	// LongPressToggleRange flips range building on or off when the range
	// mode allows it.
	LongPressToggleRange LongPressAction = iota
	// LongPressNotify emits DayLongPressedMsg and leaves range state alone.
	LongPressNotify
)

// Options configures a calendar at construction time. FirstDay, LastDay and
// FocusedDay are required; everything else has a usable default.
type Options struct {
	// Locale tags emitted dates for host-side formatting. It is carried,
	// not interpreted.
	Locale string

	// FocusedDay is the day the calendar opens on.
	FocusedDay date.Date

	// FirstDay and LastDay bound all navigation and selection, inclusive.
	FirstDay date.Date
	LastDay  date.Date

	// CurrentDay is "today" for the today flag. Zero means date.Today().
	CurrentDay date.Date

	// WeekendDays are the weekdays flagged as weekend. Nil means
	// Saturday and Sunday; an explicit empty slice means none.
	WeekendDays []time.Weekday

	// AvailableFormats is the swipe cycle, ordered largest to smallest.
	// Nil means Month, TwoWeeks, Week.
	AvailableFormats []Format

	// Format is the starting format. It must appear in AvailableFormats.
	Format Format

	// StartingWeekday is the first column of the day grid. Only Sunday
	// and Monday are supported.
	StartingWeekday time.Weekday

	// RangeMode controls range selection, see RangeMode.
	RangeMode RangeMode

	// Restriction limits the picker to month, quarter or year granularity.
	Restriction Restriction

	// LongPress selects the long-press behavior on enabled days.
	LongPress LongPressAction

	// PageJumping makes a tap on an outside day focus it exactly, paging
	// the grid to its month. When false, focus snaps to the nearest edge
	// of the focused month instead so the page stays put.
	PageJumping bool

	// HideOutsideDays suppresses leading and trailing days of adjacent
	// months; taps on them become no-ops.
	HideOutsideDays bool

	// EventLoader supplies event titles per day for the has-events flag.
	EventLoader func(date.Date) []string

	// EnabledDay vetoes in-range days. It is consulted only for days
	// already inside [FirstDay, LastDay].
	EnabledDay func(date.Date) bool

	// SelectedDay marks extra days as selected, on top of the calendar's
	// own selection state.
	SelectedDay func(date.Date) bool

	// Holiday flags days for holiday styling.
	Holiday func(date.Date) bool
}

// validate checks construction-time preconditions. Invalid configuration is
// rejected outright, never clamped.
func (o *Options) validate() error {
	if o.FirstDay.After(o.LastDay) {
		return fmt.Errorf("first day %s is after last day %s", o.FirstDay, o.LastDay)
	}
	if len(o.AvailableFormats) == 0 {
		return errors.New("no available formats")
	}
	if formatIndex(o.AvailableFormats, o.Format) < 0 {
		return fmt.Errorf("starting format %s is not in the available formats", o.Format)
	}
	for _, wd := range o.WeekendDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekend weekday %d", wd)
		}
	}
	if o.StartingWeekday != time.Sunday && o.StartingWeekday != time.Monday {
		return fmt.Errorf("starting weekday must be Sunday or Monday, got %s", o.StartingWeekday)
	}
	return nil
}

// withDefaults fills unset fields. It runs before validate so explicit
// invalid values still fail.
func (o *Options) withDefaults() {
	if o.AvailableFormats == nil {
		o.AvailableFormats = DefaultFormats()
	}
	if o.WeekendDays == nil {
		o.WeekendDays = []time.Weekday{time.Saturday, time.Sunday}
	}
	if o.CurrentDay.IsZero() {
		o.CurrentDay = date.Today()
	}
	if o.FocusedDay.IsZero() {
		o.FocusedDay = o.CurrentDay
	}
}

// isWeekend reports whether wd is in the configured weekend set.
func (o *Options) isWeekend(wd time.Weekday) bool {
	for _, w := range o.WeekendDays {
		if w == wd {
			return true
		}
	}
	return false
}
