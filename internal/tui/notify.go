package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/thiepcong/table-calendar/date"
)

// notifyEvents sends a desktop notification listing a day's events. Returns
// nil when notifications are disabled or the day is empty.
func (a *App) notifyEvents(d date.Date) tea.Cmd {
	if !a.cfg.UI.Notifications {
		return nil
	}
	titles := a.eventsFor(d)
	if len(titles) == 0 {
		return nil
	}

	body := strings.Join(titles, ", ")
	return func() tea.Msg {
		if err := beeep.Notify(d.String(), body, ""); err != nil {
			return statusMsg(fmt.Sprintf("notification failed: %v", err))
		}
		return statusMsg(fmt.Sprintf("notified %d event(s) on %s", len(titles), d))
	}
}
