package calendar

import "github.com/thiepcong/table-calendar/date"

// The calendar reports every gesture outcome as a Bubble Tea message rather
// than invoking callbacks, so the host decides what each one means.

// DaySelectedMsg is emitted when a day is tapped while range building is
// inactive. Anchor is the focused day after the focus-update rule ran.
type DaySelectedMsg struct {
	Day    date.Date
	Anchor date.Date
}

// RangeSelectedMsg is emitted while range building is active. End is nil
// after the first tap of a pair; both endpoints are set (Start <= End)
// after the second.
type RangeSelectedMsg struct {
	Start  *date.Date
	End    *date.Date
	Anchor date.Date
}

// MonthSelectedMsg is emitted by month and quarter pickers when a month
// cell is chosen. The full calendar drills into Day mode instead.
type MonthSelectedMsg struct {
	Year  int
	Month int
}

// QuarterSelectedMsg is emitted by quarter pickers. Quarter is 1-4.
type QuarterSelectedMsg struct {
	Year    int
	Quarter int
}

// YearSelectedMsg is emitted by year-only pickers when a year cell is
// chosen.
type YearSelectedMsg struct {
	Year int
}

// DayLongPressedMsg is emitted on a day long-press when the calendar was
// built with LongPressNotify.
type DayLongPressedMsg struct {
	Day date.Date
}

// DisabledDayTappedMsg is emitted when a disabled day is tapped.
type DisabledDayTappedMsg struct {
	Day date.Date
}

// DisabledDayLongPressedMsg is emitted when a disabled day is long-pressed.
type DisabledDayLongPressedMsg struct {
	Day date.Date
}

// HeaderTappedMsg is emitted on a header tap, after the view mode cycled.
type HeaderTappedMsg struct {
	Anchor date.Date
	Mode   ViewMode
}

// HeaderLongPressedMsg is emitted on a header long-press.
type HeaderLongPressedMsg struct {
	Anchor date.Date
}

// PageChangedMsg is emitted whenever the visible page settles on a new
// index, whether from a gesture or programmatic navigation.
type PageChangedMsg struct {
	Anchor date.Date
	Page   int
	Mode   ViewMode
}

// FormatChangedMsg is emitted when a swipe changes the day-grid format. No
// message is emitted for swipes clamped at a boundary.
type FormatChangedMsg struct {
	Format Format
}
