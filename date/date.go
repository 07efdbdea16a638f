// Package date provides a calendar date type with no time-of-day component.
//
// The standard library time.Time always carries a clock and a timezone, which
// makes day-level comparisons awkward: two values naming the same calendar day
// compare unequal unless both were built at the same instant in the same
// location. Date drops the clock entirely, so equality and ordering are plain
// (year, month, day) comparisons.
package date

import (
	"fmt"
	"time"
)

// Layout is the textual form used for parsing and formatting dates.
const Layout = "2006-01-02"

// Date is a calendar date: a year, month and day with no clock or zone.
// The zero value is the zero time.Time's date (January 1, year 1).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for the given year, month and day. Out-of-range
// values are normalized the same way time.Date normalizes them, so
// New(2020, 13, 1) is February 1, 2021.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar date, discarding the clock and zone.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in the local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns the midnight UTC instant of d. FromTime(d.Time()) == d for
// every d, which makes FromTime idempotent through Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates by (year, month, day). It returns -1 when d is before
// o, 0 when equal, and +1 when after.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Before reports whether d is chronologically before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is chronologically after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether d and o name the same calendar day.
func (d Date) Equal(o Date) bool { return d == o }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// SameDay reports whether two optional dates name the same day. It returns
// false when either is nil; there is no partial-match semantics.
func SameDay(a, b *Date) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months, rolling over years and clamping
// the day to the target month's length, so Jan 31 plus one month is the last
// day of February rather than March 2 or 3.
func (d Date) AddMonths(n int) Date {
	y := d.Year
	m := int(d.Month) - 1 + n
	y += m / 12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)
	day := d.Day
	if last := DaysInMonth(y, month); day > last {
		day = last
	}
	return Date{Year: y, Month: month, Day: day}
}

// AddYears returns d shifted by n years, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysInMonth(d.Year, d.Month)}
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthsBetween returns the number of whole calendar months from a's month to
// b's month, ignoring the day fields. Negative when b's month precedes a's.
func MonthsBetween(a, b Date) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}

// MarshalText implements encoding.TextMarshaler using YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input leaves
// d as the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler so dates serialize as plain
// YYYY-MM-DD scalars in config files.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
