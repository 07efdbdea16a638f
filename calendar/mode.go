package calendar

// ViewMode selects which grid the calendar is showing.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewMonth
	ViewYear
)

// String returns a display name for the view mode.
func (m ViewMode) String() string {
	switch m {
	case ViewDay:
		return "Day"
	case ViewMonth:
		return "Month"
	case ViewYear:
		return "Year"
	}
	return "Unknown"
}

// RangeMode controls whether range selection is active and whether a
// long-press can toggle it.
type RangeMode int

const (
	// RangeDisabled turns range selection off entirely.
	RangeDisabled RangeMode = iota
	// RangeToggledOff means range building is inactive but a long-press
	// can activate it.
	RangeToggledOff
	// RangeToggledOn means range building is active and a long-press can
	// deactivate it.
	RangeToggledOn
	// RangeEnforced means range building is always active and cannot be
	// toggled by gestures.
	RangeEnforced
)

// String returns a display name for the range mode.
func (m RangeMode) String() string {
	switch m {
	case RangeDisabled:
		return "disabled"
	case RangeToggledOff:
		return "off"
	case RangeToggledOn:
		return "on"
	case RangeEnforced:
		return "enforced"
	}
	return "unknown"
}

// active reports whether taps should build ranges right now.
func (m RangeMode) active() bool {
	return m == RangeToggledOn || m == RangeEnforced
}

// toggleable reports whether a long-press may flip range building.
func (m RangeMode) toggleable() bool {
	return m == RangeToggledOn || m == RangeToggledOff
}

// Restriction limits the picker to coarser granularities.
type Restriction int

const (
	// RestrictNone is the full day/month/year calendar.
	RestrictNone Restriction = iota
	// RestrictMonth is a month picker: Day mode is unreachable.
	RestrictMonth
	// RestrictQuarter is a month picker grouped into quarters.
	RestrictQuarter
	// RestrictYear is a year-only picker.
	RestrictYear
)

// initialMode returns the view mode a new calendar starts in.
func (r Restriction) initialMode() ViewMode {
	switch r {
	case RestrictMonth, RestrictQuarter:
		return ViewMonth
	case RestrictYear:
		return ViewYear
	}
	return ViewDay
}

// nextMode returns the mode a header tap moves to from m. The unrestricted
// cycle is Day -> Year -> Month -> Day; month/quarter pickers alternate
// Month <-> Year; a year-only picker never leaves Year.
func (r Restriction) nextMode(m ViewMode) ViewMode {
	switch r {
	case RestrictMonth, RestrictQuarter:
		if m == ViewMonth {
			return ViewYear
		}
		return ViewMonth
	case RestrictYear:
		return ViewYear
	}
	switch m {
	case ViewDay:
		return ViewYear
	case ViewYear:
		return ViewMonth
	default:
		return ViewDay
	}
}
