package calendar

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	todayTint = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	eventTint = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
	rangeTint = lipgloss.AdaptiveColor{Light: "#DDD0FF", Dark: "#3A2A66"}
)

// Calendar styles. Cell widths are fixed at render time, not here.
var (
	// headerStyle is for the mode/anchor title line.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	// hintStyle is for the key-hint line under the header.
	hintStyle = lipgloss.NewStyle().
			Foreground(subtle)

	// weekdayStyle is for the day-of-week column headers.
	weekdayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(subtle)

	dayStyle = lipgloss.NewStyle()

	// cursorStyle is for the highlighted cell.
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Background(highlight).
			Foreground(lipgloss.Color("#ffffff"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Underline(true)

	todayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(todayTint)

	inRangeStyle = lipgloss.NewStyle().
			Background(rangeTint)

	rangeEndpointStyle = lipgloss.NewStyle().
				Bold(true).
				Background(rangeTint).
				Foreground(highlight)

	outsideStyle = lipgloss.NewStyle().
			Faint(true)

	disabledStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	weekendStyle = lipgloss.NewStyle().
			Foreground(subtle)

	eventStyle = lipgloss.NewStyle().
			Foreground(eventTint)

	holidayStyle = lipgloss.NewStyle().
			Foreground(eventTint).
			Bold(true)
)

// cellStyle picks the style for a day cell. Cursor wins, then disabled,
// then the selection and range flags, then the decorative ones.
func (m *Model) cellStyle(c Cell) lipgloss.Style {
	if m.focused && c.Date == m.cursor {
		return cursorStyle
	}
	switch {
	case c.Disabled:
		return disabledStyle
	case c.Selected:
		return selectedStyle
	case c.RangeStart || c.RangeEnd:
		return rangeEndpointStyle
	case c.InRange:
		return inRangeStyle
	case c.Today:
		return todayStyle
	case c.Outside:
		return outsideStyle
	case c.Holiday:
		return holidayStyle
	case c.HasEvents:
		return eventStyle
	case c.Weekend:
		return weekendStyle
	}
	return dayStyle
}
