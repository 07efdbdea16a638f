package calendar

import (
	"fmt"
	"strings"
	"time"
)

// View renders the calendar for the active mode. Rendering is a pure
// function of the derived cell flags; nothing here mutates state.
func (m *Model) View() string {
	switch m.mode {
	case ViewMonth:
		if m.opts.Restriction == RestrictQuarter {
			return m.viewQuarters()
		}
		return m.viewMonths()
	case ViewYear:
		return m.viewYears()
	}
	return m.viewDays()
}

func (m *Model) viewDays() string {
	var b strings.Builder

	title := m.focusedDay.Time().Format("January 2006")
	if m.format != FormatMonth {
		title += " · " + m.format.String()
	}
	if m.rangeMode.active() {
		title += " · range"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("hjkl move | [ ] page | enter select | space hold | v view | +/- format"))
	b.WriteString("\n\n")

	for i := 0; i < gridColumns; i++ {
		wd := time.Weekday((int(m.opts.StartingWeekday) + i) % 7)
		b.WriteString(weekdayStyle.Render(fmt.Sprintf(" %s ", wd.String()[:3])))
	}
	b.WriteString("\n")

	cells := m.DayCells()
	firstRow, rowCount := m.visibleRows(cells)
	for row := firstRow; row < firstRow+rowCount; row++ {
		for col := 0; col < gridColumns; col++ {
			c := cells[row*gridColumns+col]
			if c.Outside && m.opts.HideOutsideDays {
				b.WriteString("      ")
				continue
			}
			text := fmt.Sprintf(" %2d ", c.Date.Day)
			if c.HasEvents {
				text = fmt.Sprintf(" %2d*", c.Date.Day)
			}
			b.WriteString(m.cellStyle(c).Render(text))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.selectionSummary())
	return b.String()
}

// visibleRows windows the 42-cell grid per the current format: the whole
// month, the two weeks starting at the focused day's row, or that row
// alone.
func (m *Model) visibleRows(cells []Cell) (first, count int) {
	count = m.format.Rows()
	if count >= gridRows {
		return 0, gridRows
	}
	row := 0
	for i, c := range cells {
		if c.Date == m.focusedDay {
			row = i / gridColumns
			break
		}
	}
	if row > gridRows-count {
		row = gridRows - count
	}
	return row, count
}

func (m *Model) selectionSummary() string {
	start, end := m.RangeSelection()
	switch {
	case start != nil && end != nil:
		return hintStyle.Render(fmt.Sprintf("range %s – %s", start, end))
	case start != nil:
		return hintStyle.Render(fmt.Sprintf("range %s – …", start))
	}
	if sel := m.SelectedDay(); sel != nil {
		return hintStyle.Render("selected " + sel.Time().Format("Monday, January 2, 2006"))
	}
	return hintStyle.Render("nothing selected")
}

func (m *Model) viewMonths() string {
	var b strings.Builder
	cells := m.MonthCells()

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d", cells[0].Year)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("hjkl move | [ ] year | enter select | v view"))
	b.WriteString("\n\n")

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			c := cells[row*3+col]
			style := dayStyle
			switch {
			case m.focused && c.Focused:
				style = cursorStyle
			case c.Disabled:
				style = disabledStyle
			}
			b.WriteString(style.Render(fmt.Sprintf(" %s ", c.Month.String()[:3])))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewQuarters() string {
	var b strings.Builder
	cells := m.QuarterCells()

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d", cells[0].Year)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("hjkl move | [ ] year | enter select | v view"))
	b.WriteString("\n\n")

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			c := cells[row*2+col]
			style := dayStyle
			switch {
			case m.focused && c.Focused:
				style = cursorStyle
			case c.Disabled:
				style = disabledStyle
			}
			b.WriteString(style.Render(fmt.Sprintf(" Q%d ", c.Quarter)))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewYears() string {
	var b strings.Builder
	cells := m.YearCells()

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d – %d", cells[0].Year, cells[len(cells)-1].Year)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("hjkl move | [ ] window | enter select | v view"))
	b.WriteString("\n\n")

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			c := cells[row*3+col]
			style := dayStyle
			switch {
			case m.focused && c.Focused:
				style = cursorStyle
			case c.Disabled:
				style = disabledStyle
			}
			b.WriteString(style.Render(fmt.Sprintf(" %d ", c.Year)))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
