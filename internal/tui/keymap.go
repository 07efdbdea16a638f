// Package tui provides the terminal user interface for the calendar demo.
package tui

import "strings"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains the application-level key bindings. Keys handled inside
// the calendar widget (movement, paging, taps) are not listed here.
type Keymap struct {
	Quit   Key
	Goto   Key
	Yank   Key
	Notify Key
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit:   Key{Key: "q", Help: "quit"},
		Goto:   Key{Key: "g", Help: "go to date"},
		Yank:   Key{Key: "y", Help: "copy selection"},
		Notify: Key{Key: "n", Help: "notify events"},
	}
}

// HelpLine renders the bindings as a single footer line.
func (k Keymap) HelpLine() string {
	items := []Key{k.Goto, k.Yank, k.Notify, k.Quit}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Key+": "+it.Help)
	}
	return strings.Join(parts, " • ")
}
