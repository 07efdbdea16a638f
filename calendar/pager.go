package calendar

import "github.com/thiepcong/table-calendar/date"

// Page indices are relative to Range.First: page 0 of the day view is the
// month containing First, page 0 of the month view is First's year, and page
// 0 of the year view is the twelve-year window starting at First's year.
// Each mapping is bidirectional so the current page survives a host-driven
// range swap: the index is recomputed against the new First instead of being
// reset, which keeps the visible period from jumping.

const yearsPerPage = 12

// dayPageAnchor returns the first day of the month shown by day page i.
func dayPageAnchor(first date.Date, i int) date.Date {
	return first.StartOfMonth().AddMonths(i)
}

// dayPageIndex returns the day page whose month contains focused, clamped
// to 0 when focused precedes the range start.
func dayPageIndex(first, focused date.Date) int {
	i := date.MonthsBetween(first, focused)
	if i < 0 {
		return 0
	}
	return i
}

// monthPageYear returns the year shown by month page i.
func monthPageYear(first date.Date, i int) int {
	return first.Year + i
}

// monthPageIndex returns the month page showing focused's year, clamped
// to 0.
func monthPageIndex(first, focused date.Date) int {
	i := focused.Year - first.Year
	if i < 0 {
		return 0
	}
	return i
}

// yearPageStart returns the first year of the window shown by year page i.
func yearPageStart(first date.Date, i int) int {
	return first.Year + yearsPerPage*i
}

// yearPageIndex returns the year page whose window contains focused,
// clamped to 0.
func yearPageIndex(first, focused date.Date) int {
	i := (focused.Year - first.Year) / yearsPerPage
	if focused.Year < first.Year {
		return 0
	}
	return i
}

// pageIndex returns the page containing focused for the given view mode.
func pageIndex(mode ViewMode, first, focused date.Date) int {
	switch mode {
	case ViewMonth:
		return monthPageIndex(first, focused)
	case ViewYear:
		return yearPageIndex(first, focused)
	}
	return dayPageIndex(first, focused)
}

// maxPageIndex returns the last page that still shows any in-range period.
func maxPageIndex(mode ViewMode, r Range) int {
	switch mode {
	case ViewMonth:
		return monthPageIndex(r.First, r.Last)
	case ViewYear:
		return yearPageIndex(r.First, r.Last)
	}
	return dayPageIndex(r.First, r.Last)
}
