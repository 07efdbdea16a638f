package calendar

import (
	"time"

	"github.com/thiepcong/table-calendar/date"
)

// The day grid is always 6 rows by 7 columns: 42 cells starting from the
// first week-start weekday on or before the 1st of the anchor month, with
// trailing outside days filling the final rows regardless of month length.
const (
	gridColumns = 7
	gridRows    = 6
	gridCells   = gridColumns * gridRows
)

// Cell is one day of the day grid. All flags are derived on every build and
// never stored.
type Cell struct {
	Date       date.Date
	Outside    bool
	Disabled   bool
	Today      bool
	Weekend    bool
	Holiday    bool
	Selected   bool
	InRange    bool
	RangeStart bool
	RangeEnd   bool
	HasEvents  bool
}

// MonthCell is one month of the month grid.
type MonthCell struct {
	Year     int
	Month    time.Month
	Disabled bool
	Focused  bool
}

// QuarterCell is one three-month group of the quarter grid.
type QuarterCell struct {
	Year     int
	Quarter  int // 1-4
	Disabled bool
	Focused  bool
}

// YearCell is one year of the year grid.
type YearCell struct {
	Year     int
	Disabled bool
	Focused  bool
}

// gridStart returns the top-left day of the grid for the month containing
// anchor: the latest weekStart weekday on or before the 1st.
func gridStart(anchor date.Date, weekStart time.Weekday) date.Date {
	first := anchor.StartOfMonth()
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	return first.AddDays(-offset)
}

// DayCells builds the 42 cells of the day grid around the focused day's
// month. Hosts rendering their own grid can consume this directly instead
// of View.
func (m *Model) DayCells() []Cell {
	anchor := m.focusedDay
	start := gridStart(anchor, m.opts.StartingWeekday)

	cells := make([]Cell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		d := start.AddDays(i)
		cells = append(cells, m.dayCell(d, anchor))
	}
	return cells
}

func (m *Model) dayCell(d, anchor date.Date) Cell {
	c := Cell{
		Date:    d,
		Outside: d.Year != anchor.Year || d.Month != anchor.Month,
		Today:   d == m.opts.CurrentDay,
		Weekend: m.opts.isWeekend(d.Weekday()),
	}
	c.Disabled = m.dayDisabled(d)
	if m.opts.Holiday != nil {
		c.Holiday = m.opts.Holiday(d)
	}
	c.Selected = date.SameDay(m.selected, &d) ||
		(m.opts.SelectedDay != nil && m.opts.SelectedDay(d))
	c.RangeStart = date.SameDay(m.rangeStart, &d)
	c.RangeEnd = date.SameDay(m.rangeEnd, &d)
	if m.rangeStart != nil && m.rangeEnd != nil {
		c.InRange = !d.Before(*m.rangeStart) && !d.After(*m.rangeEnd)
	}
	if m.opts.EventLoader != nil {
		c.HasEvents = len(m.opts.EventLoader(d)) > 0
	}
	return c
}

// dayDisabled reports whether d can be selected. Out-of-range days are
// disabled unconditionally; the host predicate only runs for in-range days.
func (m *Model) dayDisabled(d date.Date) bool {
	if !m.bounds.Contains(d) {
		return true
	}
	return m.opts.EnabledDay != nil && !m.opts.EnabledDay(d)
}

// MonthCells builds the 12 month cells for the month page containing the
// focused day.
func (m *Model) MonthCells() []MonthCell {
	year := monthPageYear(m.bounds.First, monthPageIndex(m.bounds.First, m.focusedDay))
	cells := make([]MonthCell, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		cells = append(cells, MonthCell{
			Year:     year,
			Month:    mo,
			Disabled: !m.bounds.ContainsMonth(year, mo),
			Focused:  year == m.focusedDay.Year && mo == m.focusedDay.Month,
		})
	}
	return cells
}

// QuarterCells builds the 4 quarter groups for the month page's year. A
// quarter is enabled only when all three of its months are in range.
func (m *Model) QuarterCells() []QuarterCell {
	year := monthPageYear(m.bounds.First, monthPageIndex(m.bounds.First, m.focusedDay))
	cells := make([]QuarterCell, 0, 4)
	for q := 1; q <= 4; q++ {
		first := time.Month(3*(q-1) + 1)
		enabled := true
		for mo := first; mo < first+3; mo++ {
			if !m.bounds.ContainsMonth(year, mo) {
				enabled = false
				break
			}
		}
		cells = append(cells, QuarterCell{
			Year:     year,
			Quarter:  q,
			Disabled: !enabled,
			Focused:  year == m.focusedDay.Year && quarterOf(m.focusedDay.Month) == q,
		})
	}
	return cells
}

func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// YearCells builds the 12 year cells starting at the year page's first
// year. Years past the navigation range are disabled; years before it are
// deliberately left enabled so early pages stay uniform.
func (m *Model) YearCells() []YearCell {
	start := yearPageStart(m.bounds.First, yearPageIndex(m.bounds.First, m.focusedDay))
	cells := make([]YearCell, 0, yearsPerPage)
	for y := start; y < start+yearsPerPage; y++ {
		cells = append(cells, YearCell{
			Year:     y,
			Disabled: y > m.bounds.Last.Year,
			Focused:  y == m.focusedDay.Year,
		})
	}
	return cells
}
