// Package styles provides Lip Gloss styles for the demo application chrome.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for headings
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Title is the style for the application title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings like the event pane header
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Status is the style for the one-line status message
	Status = lipgloss.NewStyle().
		Foreground(SuccessColor)

	// StatusError is for error status messages
	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// HelpDesc is for help text and other muted copy
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// EventItem is for a single row in the event pane
	EventItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// Prompt is for the go-to-date prompt label
	Prompt = lipgloss.NewStyle().
		Bold(true)
)
