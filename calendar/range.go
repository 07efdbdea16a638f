package calendar

import (
	"time"

	"github.com/thiepcong/table-calendar/date"
)

// Range is the inclusive span of days the calendar can navigate. Days
// outside it are always disabled.
type Range struct {
	First date.Date
	Last  date.Date
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d date.Date) bool {
	return !d.Before(r.First) && !d.After(r.Last)
}

// ContainsMonth reports whether any day of the given month falls inside
// the range.
func (r Range) ContainsMonth(year int, month time.Month) bool {
	start := date.Date{Year: year, Month: month, Day: 1}
	return !start.After(r.Last) && !start.EndOfMonth().Before(r.First)
}

// valid reports whether the range boundaries are ordered.
func (r Range) valid() bool {
	return !r.First.After(r.Last)
}
