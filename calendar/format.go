package calendar

// Format controls how many week rows of the day grid are visible at once.
type Format int

const (
	FormatMonth Format = iota
	FormatTwoWeeks
	FormatWeek
)

// String returns a display name for the format.
func (f Format) String() string {
	switch f {
	case FormatMonth:
		return "Month"
	case FormatTwoWeeks:
		return "2 weeks"
	case FormatWeek:
		return "Week"
	}
	return "Unknown"
}

// Rows returns the number of visible week rows for the format.
func (f Format) Rows() int {
	switch f {
	case FormatTwoWeeks:
		return 2
	case FormatWeek:
		return 1
	}
	return 6
}

// DefaultFormats is the full largest-to-smallest format cycle.
func DefaultFormats() []Format {
	return []Format{FormatMonth, FormatTwoWeeks, FormatWeek}
}

// formatIndex returns the position of f in formats, or -1 if absent.
func formatIndex(formats []Format, f Format) int {
	for i, v := range formats {
		if v == f {
			return i
		}
	}
	return -1
}

// nextSmaller returns the format after f in the largest-to-smallest list.
// The second return is false when f is already the smallest (or absent),
// in which case no format change should be reported.
func nextSmaller(formats []Format, f Format) (Format, bool) {
	i := formatIndex(formats, f)
	if i < 0 || i == len(formats)-1 {
		return f, false
	}
	return formats[i+1], true
}

// nextLarger returns the format before f in the largest-to-smallest list,
// clamped at the largest.
func nextLarger(formats []Format, f Format) (Format, bool) {
	i := formatIndex(formats, f)
	if i <= 0 {
		return f, false
	}
	return formats[i-1], true
}
