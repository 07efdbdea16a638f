// Package calendar provides a Bubble Tea calendar widget with day, month and
// year grid views, bounded page navigation, single-day and range selection,
// header-driven view cycling and swipeable day-grid formats.
//
// The widget owns its focus and selection state exclusively; the host
// configures bounds, predicates and policies through Options and observes
// outcomes through the messages in messages.go.
package calendar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thiepcong/table-calendar/date"
)

// Model is a calendar widget instance. Create one with New; the zero value
// is not usable.
type Model struct {
	opts   Options
	bounds Range

	mode      ViewMode
	format    Format
	rangeMode RangeMode

	// focusedDay anchors the visible page; cursor is the highlighted cell
	// and may be an outside day of the anchor month in Day mode.
	focusedDay date.Date
	cursor     date.Date

	selected   *date.Date
	rangeStart *date.Date
	rangeEnd   *date.Date

	lastPage      int
	width, height int
	focused       bool
	disposed      bool
}

// New validates opts and builds a calendar. Invalid configuration is
// rejected, never clamped.
func New(opts Options) (*Model, error) {
	opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	m := &Model{
		opts:       opts,
		bounds:     Range{First: opts.FirstDay, Last: opts.LastDay},
		mode:       opts.Restriction.initialMode(),
		format:     opts.Format,
		rangeMode:  opts.RangeMode,
		focusedDay: opts.FocusedDay,
	}
	m.cursor = m.focusedDay
	m.lastPage = pageIndex(m.mode, m.bounds.First, m.focusedDay)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages. A disposed calendar ignores everything, so late
// page-settle or key messages after teardown are dropped.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.disposed {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg maps keys onto calendar gestures: enter taps the highlighted
// cell, space long-presses it, v taps the header and +/- swipe the format.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "h", "left":
		return m.moveHorizontal(-1)
	case "l", "right":
		return m.moveHorizontal(1)
	case "k", "up":
		return m.moveVertical(-1)
	case "j", "down":
		return m.moveVertical(1)
	case "[":
		return m.pageBy(-1)
	case "]":
		return m.pageBy(1)
	case "t":
		return m.gotoToday()
	case "enter":
		return m.tap()
	case " ":
		return m.longPress()
	case "v":
		return m.tapHeader()
	case "V":
		return emit(HeaderLongPressedMsg{Anchor: m.focusedDay})
	case "+", "=":
		return m.swipeUp()
	case "-":
		return m.swipeDown()
	}
	return nil
}

// emit wraps a message in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// --- navigation ---

func (m *Model) moveHorizontal(dir int) tea.Cmd {
	switch m.mode {
	case ViewMonth:
		if m.opts.Restriction == RestrictQuarter {
			return m.moveFocusMonths(3 * dir)
		}
		return m.moveFocusMonths(dir)
	case ViewYear:
		return m.moveFocusYears(dir)
	}
	return m.moveCursorDays(dir)
}

func (m *Model) moveVertical(dir int) tea.Cmd {
	switch m.mode {
	case ViewMonth:
		if m.opts.Restriction == RestrictQuarter {
			return m.moveFocusMonths(6 * dir)
		}
		return m.moveFocusMonths(3 * dir)
	case ViewYear:
		return m.moveFocusYears(3 * dir)
	}
	return m.moveCursorDays(7 * dir)
}

// moveCursorDays moves the Day-mode cursor, paging the anchor month over
// when the cursor walks off the visible grid.
func (m *Model) moveCursorDays(n int) tea.Cmd {
	c := m.clampToBounds(m.cursor.AddDays(n))
	if c == m.cursor {
		return nil
	}
	m.cursor = c

	start := gridStart(m.focusedDay, m.opts.StartingWeekday)
	end := start.AddDays(gridCells - 1)
	switch {
	case c.Before(start):
		m.focusedDay = m.clampToBounds(m.focusedDay.AddMonths(-1))
	case c.After(end):
		m.focusedDay = m.clampToBounds(m.focusedDay.AddMonths(1))
	default:
		return nil
	}
	return m.syncPage()
}

func (m *Model) moveFocusMonths(n int) tea.Cmd {
	return m.setFocus(m.focusedDay.AddMonths(n))
}

func (m *Model) moveFocusYears(n int) tea.Cmd {
	return m.setFocus(m.focusedDay.AddYears(n))
}

// pageBy moves one page in the current view: a month, a year, or a
// twelve-year window.
func (m *Model) pageBy(dir int) tea.Cmd {
	switch m.mode {
	case ViewMonth:
		return m.moveFocusYears(dir)
	case ViewYear:
		return m.moveFocusYears(yearsPerPage * dir)
	}
	return m.setFocus(m.focusedDay.AddMonths(dir))
}

func (m *Model) gotoToday() tea.Cmd {
	return m.setFocus(m.opts.CurrentDay)
}

// setFocus moves both focus and cursor to d, clamped to the navigation
// bounds, and reports any page change.
func (m *Model) setFocus(d date.Date) tea.Cmd {
	d = m.clampToBounds(d)
	if d == m.focusedDay && d == m.cursor {
		return nil
	}
	m.focusedDay = d
	m.cursor = d
	return m.syncPage()
}

func (m *Model) clampToBounds(d date.Date) date.Date {
	if d.Before(m.bounds.First) {
		return m.bounds.First
	}
	if d.After(m.bounds.Last) {
		return m.bounds.Last
	}
	return d
}

// syncPage recomputes the page index for the current mode and emits
// PageChangedMsg when it moved.
func (m *Model) syncPage() tea.Cmd {
	p := pageIndex(m.mode, m.bounds.First, m.focusedDay)
	if p == m.lastPage {
		return nil
	}
	m.lastPage = p
	return emit(PageChangedMsg{Anchor: m.focusedDay, Page: p, Mode: m.mode})
}

// --- gestures ---

func (m *Model) tap() tea.Cmd {
	switch m.mode {
	case ViewMonth:
		if m.opts.Restriction == RestrictQuarter {
			return m.tapQuarter()
		}
		return m.tapMonth()
	case ViewYear:
		return m.tapYear()
	}
	return m.tapDay(m.cursor)
}

func (m *Model) longPress() tea.Cmd {
	if m.mode != ViewDay {
		return nil
	}
	return m.longPressDay(m.cursor)
}

// tapDay applies the day-tap transition: suppressed outside days are
// no-ops, disabled days only notify, and enabled days update focus and then
// either extend the pending range or select a single day.
func (m *Model) tapDay(d date.Date) tea.Cmd {
	if m.outsideFocusedMonth(d) && m.opts.HideOutsideDays {
		return nil
	}
	if m.dayDisabled(d) {
		return emit(DisabledDayTappedMsg{Day: d})
	}

	focusCmd := m.applyFocusRule(d)
	if m.rangeMode.active() {
		return tea.Batch(focusCmd, m.applyRangeTap(d))
	}

	sel := d
	m.selected = &sel
	return tea.Batch(focusCmd, emit(DaySelectedMsg{Day: d, Anchor: m.focusedDay}))
}

// applyRangeTap builds the range two taps at a time. The first tap of a
// pair reports a partial range; the second fills the missing endpoint,
// swapping so the earlier date is always the start. Tapping the same day
// twice yields a valid zero-length range.
func (m *Model) applyRangeTap(d date.Date) tea.Cmd {
	m.selected = nil
	if m.rangeStart == nil || m.rangeEnd != nil {
		s := d
		m.rangeStart, m.rangeEnd = &s, nil
		return emit(RangeSelectedMsg{Start: m.rangeStart, Anchor: m.focusedDay})
	}

	s, e := *m.rangeStart, d
	if e.Before(s) {
		s, e = e, s
	}
	m.rangeStart, m.rangeEnd = &s, &e
	return emit(RangeSelectedMsg{Start: m.rangeStart, End: m.rangeEnd, Anchor: m.focusedDay})
}

// longPressDay mirrors tapDay's outside and disabled checks. With
// LongPressNotify the host owns the gesture and range toggling is bypassed;
// otherwise a toggleable range mode flips, starting a fresh range or
// falling back to a single-day selection.
func (m *Model) longPressDay(d date.Date) tea.Cmd {
	if m.outsideFocusedMonth(d) && m.opts.HideOutsideDays {
		return nil
	}
	if m.dayDisabled(d) {
		return emit(DisabledDayLongPressedMsg{Day: d})
	}

	if m.opts.LongPress == LongPressNotify {
		focusCmd := m.applyFocusRule(d)
		return tea.Batch(focusCmd, emit(DayLongPressedMsg{Day: d}))
	}

	if !m.rangeMode.toggleable() {
		return nil
	}
	focusCmd := m.applyFocusRule(d)
	if m.rangeMode == RangeToggledOff {
		m.rangeMode = RangeToggledOn
		s := d
		m.rangeStart, m.rangeEnd = &s, nil
		m.selected = nil
		return tea.Batch(focusCmd, emit(RangeSelectedMsg{Start: m.rangeStart, Anchor: m.focusedDay}))
	}

	m.rangeMode = RangeToggledOff
	m.rangeStart, m.rangeEnd = nil, nil
	sel := d
	m.selected = &sel
	return tea.Batch(focusCmd, emit(DaySelectedMsg{Day: d, Anchor: m.focusedDay}))
}

// applyFocusRule updates the focused day for a tap on d. Without page
// jumping, a tap on an adjacent-month day snaps focus to the nearest edge
// of the focused month so the visible page stays put; with page jumping the
// tapped day is focused exactly.
func (m *Model) applyFocusRule(d date.Date) tea.Cmd {
	if m.opts.PageJumping {
		return m.setFocus(d)
	}
	f := m.focusedDay
	switch {
	case monthBefore(d, f):
		m.focusedDay = f.StartOfMonth()
	case monthBefore(f, d):
		m.focusedDay = f.EndOfMonth()
	default:
		m.focusedDay = d
	}
	m.cursor = m.focusedDay
	return m.syncPage()
}

// monthBefore reports whether a's month is strictly before b's.
func monthBefore(a, b date.Date) bool {
	return a.Year < b.Year || (a.Year == b.Year && a.Month < b.Month)
}

func (m *Model) outsideFocusedMonth(d date.Date) bool {
	return d.Year != m.focusedDay.Year || d.Month != m.focusedDay.Month
}

// tapMonth selects the focused month cell: a month picker reports it, the
// full calendar drills into Day mode on it.
func (m *Model) tapMonth() tea.Cmd {
	y, mo := m.focusedDay.Year, m.focusedDay.Month
	if !m.bounds.ContainsMonth(y, mo) {
		return nil
	}
	if m.opts.Restriction == RestrictMonth {
		return emit(MonthSelectedMsg{Year: y, Month: int(mo)})
	}
	m.enterMode(ViewDay)
	return nil
}

// tapQuarter selects the focused quarter. A quarter is selectable only
// when all three of its months are in range.
func (m *Model) tapQuarter() tea.Cmd {
	for _, c := range m.QuarterCells() {
		if !c.Focused {
			continue
		}
		if c.Disabled {
			return nil
		}
		return emit(QuarterSelectedMsg{Year: c.Year, Quarter: c.Quarter})
	}
	return nil
}

// tapYear selects the focused year cell: a year picker reports it, the
// full calendar drills into Month mode on it.
func (m *Model) tapYear() tea.Cmd {
	y := m.focusedDay.Year
	if y > m.bounds.Last.Year {
		return nil
	}
	if m.opts.Restriction == RestrictYear {
		return emit(YearSelectedMsg{Year: y})
	}
	m.enterMode(ViewMonth)
	return nil
}

// tapHeader cycles the view mode. The unrestricted order is
// Day -> Year -> Month -> Day.
func (m *Model) tapHeader() tea.Cmd {
	m.enterMode(m.opts.Restriction.nextMode(m.mode))
	return emit(HeaderTappedMsg{Anchor: m.focusedDay, Mode: m.mode})
}

// enterMode switches views and realigns the page index without reporting a
// page change; mode switches are not page navigation.
func (m *Model) enterMode(mode ViewMode) {
	m.mode = mode
	m.cursor = m.focusedDay
	m.lastPage = pageIndex(m.mode, m.bounds.First, m.focusedDay)
}

func (m *Model) swipeUp() tea.Cmd {
	if m.mode != ViewDay {
		return nil
	}
	f, ok := nextSmaller(m.opts.AvailableFormats, m.format)
	if !ok {
		return nil
	}
	m.format = f
	return emit(FormatChangedMsg{Format: f})
}

func (m *Model) swipeDown() tea.Cmd {
	if m.mode != ViewDay {
		return nil
	}
	f, ok := nextLarger(m.opts.AvailableFormats, m.format)
	if !ok {
		return nil
	}
	m.format = f
	return emit(FormatChangedMsg{Format: f})
}

// --- host-driven updates ---
// These take precedence over internally pending state and are applied only
// on value inequality, so redundant host updates are cheap no-ops.

// SetRange swaps the navigation bounds. The page position is recomputed
// against the new first day rather than reset, so the visible period does
// not jump.
func (m *Model) SetRange(first, last date.Date) error {
	r := Range{First: first, Last: last}
	if !r.valid() {
		return fmt.Errorf("calendar: first day %s is after last day %s", first, last)
	}
	if r == m.bounds {
		return nil
	}
	m.bounds = r
	m.focusedDay = m.clampToBounds(m.focusedDay)
	m.cursor = m.clampToBounds(m.cursor)
	m.lastPage = pageIndex(m.mode, m.bounds.First, m.focusedDay)
	return nil
}

// SetFocusedDay moves focus from the host side, overriding any pending
// internal focus.
func (m *Model) SetFocusedDay(d date.Date) {
	if d == m.focusedDay {
		return
	}
	m.focusedDay = m.clampToBounds(d)
	m.cursor = m.focusedDay
	m.lastPage = pageIndex(m.mode, m.bounds.First, m.focusedDay)
}

// SetRangeMode changes the range policy. Disabling range selection clears
// both endpoints, pending or not.
func (m *Model) SetRangeMode(mode RangeMode) {
	if mode == m.rangeMode {
		return
	}
	m.rangeMode = mode
	if mode == RangeDisabled {
		m.rangeStart, m.rangeEnd = nil, nil
	}
}

// SetSelection replaces the single-day selection. Nil clears it.
func (m *Model) SetSelection(d *date.Date) {
	if d == nil {
		m.selected = nil
		return
	}
	sel := *d
	m.selected = &sel
}

// SetRangeSelection replaces both range endpoints, swapping them when the
// host supplies them out of order. Either may be nil.
func (m *Model) SetRangeSelection(start, end *date.Date) {
	if start != nil && end != nil && end.Before(*start) {
		start, end = end, start
	}
	m.rangeStart, m.rangeEnd = copyDate(start), copyDate(end)
}

// ClearSelection drops the single-day selection and both range endpoints.
func (m *Model) ClearSelection() {
	m.selected = nil
	m.rangeStart, m.rangeEnd = nil, nil
}

// SetPage navigates to page i of the current view, clamped to the pages
// that show any in-range period. This is the programmatic counterpart of
// the paging keys.
func (m *Model) SetPage(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if max := maxPageIndex(m.mode, m.bounds); i > max {
		i = max
	}
	var anchor date.Date
	switch m.mode {
	case ViewMonth:
		anchor = date.Date{Year: monthPageYear(m.bounds.First, i), Month: m.focusedDay.Month, Day: 1}
	case ViewYear:
		anchor = date.Date{Year: yearPageStart(m.bounds.First, i), Month: m.focusedDay.Month, Day: 1}
	default:
		anchor = dayPageAnchor(m.bounds.First, i)
	}
	return m.setFocus(anchor)
}

// Dispose marks the calendar dead. All later messages are ignored.
func (m *Model) Dispose() {
	m.disposed = true
}

// Disposed reports whether Dispose was called.
func (m *Model) Disposed() bool {
	return m.disposed
}

// --- component plumbing, accessors ---

// SetSize updates the widget's render dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the widget keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the widget has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

// Mode returns the active view mode.
func (m *Model) Mode() ViewMode { return m.mode }

// Format returns the current day-grid format.
func (m *Model) Format() Format { return m.format }

// RangeMode returns the current range selection mode.
func (m *Model) RangeMode() RangeMode { return m.rangeMode }

// FocusedDay returns the anchor the visible page is built around.
func (m *Model) FocusedDay() date.Date { return m.focusedDay }

// Cursor returns the highlighted cell's date.
func (m *Model) Cursor() date.Date { return m.cursor }

// Bounds returns the navigation range.
func (m *Model) Bounds() Range { return m.bounds }

// Page returns the current page index for the active view mode.
func (m *Model) Page() int {
	return pageIndex(m.mode, m.bounds.First, m.focusedDay)
}

// MaxPage returns the last reachable page index for the active view mode.
func (m *Model) MaxPage() int {
	return maxPageIndex(m.mode, m.bounds)
}

// SelectedDay returns a copy of the single-day selection, or nil.
func (m *Model) SelectedDay() *date.Date {
	return copyDate(m.selected)
}

// RangeSelection returns copies of the range endpoints; either may be nil.
func (m *Model) RangeSelection() (start, end *date.Date) {
	return copyDate(m.rangeStart), copyDate(m.rangeEnd)
}

func copyDate(d *date.Date) *date.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
