package calendar

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thiepcong/table-calendar/date"
)

func mustNew(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

// collectMsgs runs a command tree and flattens every message it produces.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runCmd(cmd tea.Cmd) {
	collectMsgs(cmd)
}

// singleMsg asserts the command produced exactly one message and returns it.
func singleMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1: %#v", len(msgs), msgs)
	}
	return msgs[0]
}

func year2020Options() Options {
	return Options{
		FirstDay:   date.New(2020, time.January, 1),
		LastDay:    date.New(2020, time.December, 31),
		FocusedDay: date.New(2020, time.March, 15),
		CurrentDay: date.New(2020, time.March, 10),
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			"first after last",
			Options{
				FirstDay:   date.New(2021, time.January, 1),
				LastDay:    date.New(2020, time.January, 1),
				FocusedDay: date.New(2020, time.June, 1),
			},
		},
		{
			"format not available",
			Options{
				FirstDay:         date.New(2020, time.January, 1),
				LastDay:          date.New(2020, time.December, 31),
				FocusedDay:       date.New(2020, time.June, 1),
				AvailableFormats: []Format{FormatMonth, FormatWeek},
				Format:           FormatTwoWeeks,
			},
		},
		{
			"empty format list",
			Options{
				FirstDay:         date.New(2020, time.January, 1),
				LastDay:          date.New(2020, time.December, 31),
				FocusedDay:       date.New(2020, time.June, 1),
				AvailableFormats: []Format{},
			},
		},
		{
			"weekend weekday out of range",
			Options{
				FirstDay:    date.New(2020, time.January, 1),
				LastDay:     date.New(2020, time.December, 31),
				FocusedDay:  date.New(2020, time.June, 1),
				WeekendDays: []time.Weekday{time.Weekday(9)},
			},
		},
		{
			"week start not sunday or monday",
			Options{
				FirstDay:        date.New(2020, time.January, 1),
				LastDay:         date.New(2020, time.December, 31),
				FocusedDay:      date.New(2020, time.June, 1),
				StartingWeekday: time.Wednesday,
			},
		},
	}

	for _, tt := range tests {
		if _, err := New(tt.opts); err == nil {
			t.Errorf("%s: expected construction to fail", tt.name)
		}
	}
}

func TestHeaderTap_ThreeCycle(t *testing.T) {
	m := mustNew(t, year2020Options())

	wantModes := []ViewMode{ViewYear, ViewMonth, ViewDay}
	for i, want := range wantModes {
		msg := singleMsg(t, m.tapHeader())
		tapped, ok := msg.(HeaderTappedMsg)
		if !ok {
			t.Fatalf("tap %d: got %T, want HeaderTappedMsg", i+1, msg)
		}
		if tapped.Mode != want || m.Mode() != want {
			t.Errorf("tap %d: mode = %v, want %v", i+1, m.Mode(), want)
		}
	}
	if m.Mode() != ViewDay {
		t.Errorf("three header taps should return to Day, got %v", m.Mode())
	}
}

func TestRestrictedPickers_InitialModeAndHeaderCycle(t *testing.T) {
	tests := []struct {
		restriction Restriction
		initial     ViewMode
		afterTap    ViewMode
	}{
		{RestrictNone, ViewDay, ViewYear},
		{RestrictMonth, ViewMonth, ViewYear},
		{RestrictQuarter, ViewMonth, ViewYear},
		{RestrictYear, ViewYear, ViewYear},
	}

	for _, tt := range tests {
		opts := year2020Options()
		opts.Restriction = tt.restriction
		m := mustNew(t, opts)

		if m.Mode() != tt.initial {
			t.Errorf("restriction %v: initial mode = %v, want %v", tt.restriction, m.Mode(), tt.initial)
		}
		runCmd(m.tapHeader())
		if m.Mode() != tt.afterTap {
			t.Errorf("restriction %v: mode after header tap = %v, want %v", tt.restriction, m.Mode(), tt.afterTap)
		}
	}

	// Month picker alternates Month <-> Year.
	opts := year2020Options()
	opts.Restriction = RestrictMonth
	m := mustNew(t, opts)
	runCmd(m.tapHeader())
	runCmd(m.tapHeader())
	if m.Mode() != ViewMonth {
		t.Errorf("month picker should return to Month, got %v", m.Mode())
	}
}

func TestTapDay_SingleSelection(t *testing.T) {
	m := mustNew(t, year2020Options())

	d := date.New(2020, time.March, 20)
	msg := singleMsg(t, m.tapDay(d))
	sel, ok := msg.(DaySelectedMsg)
	if !ok {
		t.Fatalf("got %T, want DaySelectedMsg", msg)
	}
	if sel.Day != d {
		t.Errorf("selected day = %v, want %v", sel.Day, d)
	}
	if sel.Anchor != d {
		t.Errorf("anchor = %v, want %v (same-month tap focuses the tapped day)", sel.Anchor, d)
	}
	if got := m.SelectedDay(); got == nil || *got != d {
		t.Errorf("SelectedDay = %v, want %v", got, d)
	}
}

func TestTapDay_RangeScenario(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOn
	m := mustNew(t, opts)

	// First tap: partial range.
	msg := singleMsg(t, m.tapDay(date.New(2020, time.March, 15)))
	r, ok := msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeSelectedMsg", msg)
	}
	if r.Start == nil || *r.Start != date.New(2020, time.March, 15) {
		t.Errorf("partial range start = %v", r.Start)
	}
	if r.End != nil {
		t.Errorf("partial range end = %v, want nil", r.End)
	}

	// Second tap on an earlier day: endpoints swap.
	msg = singleMsg(t, m.tapDay(date.New(2020, time.March, 10)))
	r, ok = msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeSelectedMsg", msg)
	}
	if r.Start == nil || *r.Start != date.New(2020, time.March, 10) {
		t.Errorf("range start = %v, want 2020-03-10", r.Start)
	}
	if r.End == nil || *r.End != date.New(2020, time.March, 15) {
		t.Errorf("range end = %v, want 2020-03-15", r.End)
	}
}

func TestTapDay_ZeroLengthRange(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOn
	m := mustNew(t, opts)

	d := date.New(2020, time.March, 15)
	runCmd(m.tapDay(d))
	msg := singleMsg(t, m.tapDay(d))
	r, ok := msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeSelectedMsg", msg)
	}
	if r.Start == nil || r.End == nil || *r.Start != d || *r.End != d {
		t.Errorf("zero-length range = (%v, %v), want (%v, %v)", r.Start, r.End, d, d)
	}
}

func TestTapDay_ThirdTapStartsNewRange(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOn
	m := mustNew(t, opts)

	runCmd(m.tapDay(date.New(2020, time.March, 10)))
	runCmd(m.tapDay(date.New(2020, time.March, 15)))
	msg := singleMsg(t, m.tapDay(date.New(2020, time.March, 20)))
	r, ok := msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeSelectedMsg", msg)
	}
	if r.Start == nil || *r.Start != date.New(2020, time.March, 20) || r.End != nil {
		t.Errorf("third tap should restart the range, got (%v, %v)", r.Start, r.End)
	}
}

func TestTapDay_DisabledDay(t *testing.T) {
	m := mustNew(t, year2020Options())

	msg := singleMsg(t, m.tapDay(date.New(2019, time.December, 31)))
	if _, ok := msg.(DisabledDayTappedMsg); !ok {
		t.Fatalf("got %T, want DisabledDayTappedMsg", msg)
	}
	if m.SelectedDay() != nil {
		t.Error("disabled tap must not select")
	}
}

func TestTapDay_HiddenOutsideDayIsNoop(t *testing.T) {
	opts := year2020Options()
	opts.HideOutsideDays = true
	m := mustNew(t, opts)

	if msgs := collectMsgs(m.tapDay(date.New(2020, time.February, 28))); len(msgs) != 0 {
		t.Errorf("tap on hidden outside day emitted %d messages", len(msgs))
	}
	if m.SelectedDay() != nil {
		t.Error("hidden outside tap must not select")
	}
}

func TestFocusRule_SnapsWithoutPageJumping(t *testing.T) {
	tests := []struct {
		name string
		tap  date.Date
		want date.Date
	}{
		{"earlier month snaps to first", date.New(2020, time.February, 28), date.New(2020, time.March, 1)},
		{"later month snaps to last", date.New(2020, time.April, 2), date.New(2020, time.March, 31)},
		{"same month focuses exactly", date.New(2020, time.March, 20), date.New(2020, time.March, 20)},
	}

	for _, tt := range tests {
		m := mustNew(t, year2020Options())
		msg := singleMsg(t, m.tapDay(tt.tap))
		sel, ok := msg.(DaySelectedMsg)
		if !ok {
			t.Fatalf("%s: got %T, want DaySelectedMsg", tt.name, msg)
		}
		if sel.Day != tt.tap {
			t.Errorf("%s: selected %v, want the tapped day", tt.name, sel.Day)
		}
		if m.FocusedDay() != tt.want {
			t.Errorf("%s: focus = %v, want %v", tt.name, m.FocusedDay(), tt.want)
		}
	}
}

func TestFocusRule_PageJumping(t *testing.T) {
	opts := year2020Options()
	opts.PageJumping = true
	m := mustNew(t, opts)

	tap := date.New(2020, time.April, 2)
	msgs := collectMsgs(m.tapDay(tap))

	if m.FocusedDay() != tap {
		t.Errorf("focus = %v, want the tapped day exactly", m.FocusedDay())
	}

	var paged, selected bool
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case PageChangedMsg:
			paged = true
			if msg.Page != 3 {
				t.Errorf("page = %d, want 3 (April)", msg.Page)
			}
		case DaySelectedMsg:
			selected = true
		}
	}
	if !paged || !selected {
		t.Errorf("want both PageChangedMsg and DaySelectedMsg, got %#v", msgs)
	}
}

func TestLongPress_TogglesRangeBuilding(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOff
	m := mustNew(t, opts)

	// Off -> on: starts a new range at the pressed day.
	d := date.New(2020, time.March, 12)
	msg := singleMsg(t, m.longPressDay(d))
	r, ok := msg.(RangeSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want RangeSelectedMsg", msg)
	}
	if r.Start == nil || *r.Start != d || r.End != nil {
		t.Errorf("toggled-on range = (%v, %v), want (%v, nil)", r.Start, r.End, d)
	}
	if m.RangeMode() != RangeToggledOn {
		t.Errorf("range mode = %v, want toggled on", m.RangeMode())
	}

	// On -> off: clears the pending start and selects a single day.
	e := date.New(2020, time.March, 18)
	msg = singleMsg(t, m.longPressDay(e))
	sel, ok := msg.(DaySelectedMsg)
	if !ok {
		t.Fatalf("got %T, want DaySelectedMsg", msg)
	}
	if sel.Day != e {
		t.Errorf("selected day = %v, want %v", sel.Day, e)
	}
	if m.RangeMode() != RangeToggledOff {
		t.Errorf("range mode = %v, want toggled off", m.RangeMode())
	}
	if start, end := m.RangeSelection(); start != nil || end != nil {
		t.Errorf("pending range should be cleared, got (%v, %v)", start, end)
	}
}

func TestLongPress_EnforcedCannotToggle(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeEnforced
	m := mustNew(t, opts)

	if msgs := collectMsgs(m.longPressDay(date.New(2020, time.March, 12))); len(msgs) != 0 {
		t.Errorf("long-press under enforced mode emitted %d messages", len(msgs))
	}
	if m.RangeMode() != RangeEnforced {
		t.Errorf("range mode = %v, want enforced", m.RangeMode())
	}
}

func TestLongPress_NotifyBypassesRangeToggle(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOff
	opts.LongPress = LongPressNotify
	m := mustNew(t, opts)

	d := date.New(2020, time.March, 12)
	msg := singleMsg(t, m.longPressDay(d))
	pressed, ok := msg.(DayLongPressedMsg)
	if !ok {
		t.Fatalf("got %T, want DayLongPressedMsg", msg)
	}
	if pressed.Day != d {
		t.Errorf("pressed day = %v, want %v", pressed.Day, d)
	}
	if m.RangeMode() != RangeToggledOff {
		t.Errorf("range mode changed to %v under LongPressNotify", m.RangeMode())
	}
}

func TestLongPress_DisabledDay(t *testing.T) {
	m := mustNew(t, year2020Options())

	msg := singleMsg(t, m.longPressDay(date.New(2021, time.June, 1)))
	if _, ok := msg.(DisabledDayLongPressedMsg); !ok {
		t.Fatalf("got %T, want DisabledDayLongPressedMsg", msg)
	}
}

func TestDrillDown_YearToMonthToDay(t *testing.T) {
	m := mustNew(t, year2020Options())
	runCmd(m.tapHeader()) // Day -> Year

	if m.Mode() != ViewYear {
		t.Fatalf("mode = %v, want Year", m.Mode())
	}
	runCmd(m.tapYear())
	if m.Mode() != ViewMonth {
		t.Errorf("selecting a year should land in Month mode, got %v", m.Mode())
	}
	runCmd(m.tapMonth())
	if m.Mode() != ViewDay {
		t.Errorf("selecting a month should land in Day mode, got %v", m.Mode())
	}
}

func TestRestrictedSelections_EmitMessages(t *testing.T) {
	opts := year2020Options()
	opts.Restriction = RestrictMonth
	m := mustNew(t, opts)

	msg := singleMsg(t, m.tapMonth())
	mo, ok := msg.(MonthSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want MonthSelectedMsg", msg)
	}
	if mo.Year != 2020 || mo.Month != 3 {
		t.Errorf("month selection = %+v, want 2020-03", mo)
	}
	if m.Mode() != ViewMonth {
		t.Errorf("month picker must stay in Month mode, got %v", m.Mode())
	}

	opts.Restriction = RestrictQuarter
	m = mustNew(t, opts)
	msg = singleMsg(t, m.tapQuarter())
	q, ok := msg.(QuarterSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want QuarterSelectedMsg", msg)
	}
	if q.Year != 2020 || q.Quarter != 1 {
		t.Errorf("quarter selection = %+v, want 2020 Q1", q)
	}

	opts.Restriction = RestrictYear
	m = mustNew(t, opts)
	msg = singleMsg(t, m.tapYear())
	y, ok := msg.(YearSelectedMsg)
	if !ok {
		t.Fatalf("got %T, want YearSelectedMsg", msg)
	}
	if y.Year != 2020 {
		t.Errorf("year selection = %+v, want 2020", y)
	}
}

func TestSwipeFormat_ViaKeys(t *testing.T) {
	m := mustNew(t, year2020Options())

	msg := singleMsg(t, m.swipeUp())
	f, ok := msg.(FormatChangedMsg)
	if !ok || f.Format != FormatTwoWeeks {
		t.Fatalf("swipe up from Month: got %#v, want TwoWeeks", msg)
	}
	runCmd(m.swipeUp()) // -> Week
	if m.Format() != FormatWeek {
		t.Fatalf("format = %v, want Week", m.Format())
	}
	if msgs := collectMsgs(m.swipeUp()); len(msgs) != 0 {
		t.Errorf("swipe up at Week should be a silent no-op, got %#v", msgs)
	}
	runCmd(m.swipeDown())
	if m.Format() != FormatTwoWeeks {
		t.Errorf("swipe down from Week: format = %v, want TwoWeeks", m.Format())
	}
}

func TestPaging_EmitsPageChanged(t *testing.T) {
	m := mustNew(t, year2020Options())

	msg := singleMsg(t, m.pageBy(1))
	p, ok := msg.(PageChangedMsg)
	if !ok {
		t.Fatalf("got %T, want PageChangedMsg", msg)
	}
	if p.Page != 3 || p.Mode != ViewDay {
		t.Errorf("page = %d mode = %v, want 3/Day", p.Page, p.Mode)
	}
	if m.FocusedDay().Month != time.April {
		t.Errorf("focused month = %v, want April", m.FocusedDay().Month)
	}

	// Paging past the range end clamps at the last page.
	runCmd(m.SetPage(m.MaxPage()))
	if msgs := collectMsgs(m.pageBy(1)); len(msgs) != 0 {
		t.Errorf("paging past the last page emitted %#v", msgs)
	}
}

func TestCursorMovement_PagesAcrossMonths(t *testing.T) {
	opts := year2020Options()
	opts.FocusedDay = date.New(2020, time.March, 1)
	m := mustNew(t, opts)

	// March 2020 with a Sunday week start renders Mar 1 .. Apr 11; walking
	// left of the grid start pages back to February.
	msg := singleMsg(t, m.moveCursorDays(-1))
	p, ok := msg.(PageChangedMsg)
	if !ok {
		t.Fatalf("got %T, want PageChangedMsg", msg)
	}
	if p.Page != 1 {
		t.Errorf("page = %d, want 1 (February)", p.Page)
	}
	if m.Cursor() != date.New(2020, time.February, 29) {
		t.Errorf("cursor = %v, want 2020-02-29", m.Cursor())
	}
	if m.FocusedDay().Month != time.February {
		t.Errorf("anchor month = %v, want February", m.FocusedDay().Month)
	}
}

func TestHostUpdates_TakePrecedence(t *testing.T) {
	opts := year2020Options()
	opts.RangeMode = RangeToggledOn
	m := mustNew(t, opts)

	// A pending half-built range is dropped when the host disables ranges.
	runCmd(m.tapDay(date.New(2020, time.March, 12)))
	m.SetRangeMode(RangeDisabled)
	if start, end := m.RangeSelection(); start != nil || end != nil {
		t.Errorf("pending range survived SetRangeMode(Disabled): (%v, %v)", start, end)
	}

	// Host-supplied endpoints are order-normalized.
	a := date.New(2020, time.June, 20)
	b := date.New(2020, time.June, 5)
	m.SetRangeSelection(&a, &b)
	start, end := m.RangeSelection()
	if start == nil || end == nil || *start != b || *end != a {
		t.Errorf("host range = (%v, %v), want (%v, %v)", start, end, b, a)
	}

	// Host focus changes win and clamp into bounds.
	m.SetFocusedDay(date.New(2021, time.June, 1))
	if m.FocusedDay() != date.New(2020, time.December, 31) {
		t.Errorf("focus = %v, want clamped to range end", m.FocusedDay())
	}
}

func TestDisposed_IgnoresMessages(t *testing.T) {
	m := mustNew(t, year2020Options())
	before := m.FocusedDay()

	m.Dispose()
	if !m.Disposed() {
		t.Fatal("Disposed() should be true after Dispose")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if cmd != nil {
		t.Error("disposed calendar returned a command")
	}
	if m.FocusedDay() != before {
		t.Errorf("disposed calendar moved focus to %v", m.FocusedDay())
	}
}

func TestUpdate_KeyDrivenSelection(t *testing.T) {
	m := mustNew(t, year2020Options())
	m.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := singleMsg(t, cmd)
	sel, ok := msg.(DaySelectedMsg)
	if !ok {
		t.Fatalf("got %T, want DaySelectedMsg", msg)
	}
	if sel.Day != date.New(2020, time.March, 15) {
		t.Errorf("enter selected %v, want the cursor day", sel.Day)
	}
}

func TestGotoToday(t *testing.T) {
	m := mustNew(t, year2020Options())
	runCmd(m.pageBy(2))

	runCmd(m.gotoToday())
	if m.FocusedDay() != date.New(2020, time.March, 10) {
		t.Errorf("focus = %v, want the configured current day", m.FocusedDay())
	}
}
