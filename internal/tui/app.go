package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thiepcong/table-calendar/calendar"
	"github.com/thiepcong/table-calendar/date"
	"github.com/thiepcong/table-calendar/internal/config"
	"github.com/thiepcong/table-calendar/internal/tui/styles"
)

// statusMsg replaces the status line.
type statusMsg string

// App is the root Bubble Tea model. It hosts the calendar widget and turns
// the widget's messages into the event pane, the status line, clipboard
// writes and desktop notifications.
type App struct {
	cal    *calendar.Model
	cfg    *config.Config
	keymap Keymap

	events    viewport.Model
	gotoInput textinput.Model
	jumping   bool

	status      string
	statusIsErr bool
	width       int
	height      int
}

// NewApp creates the application model around an already-built calendar.
func NewApp(cal *calendar.Model, cfg *config.Config) *App {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12

	cal.Focus()

	a := &App{
		cal:       cal,
		cfg:       cfg,
		keymap:    DefaultKeymap(),
		events:    viewport.New(40, 5),
		gotoInput: ti,
	}
	a.refreshEvents()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.cal.SetSize(msg.Width, msg.Height-12)
		a.events.Width = msg.Width - 4
		return a, nil

	case statusMsg:
		a.setStatus(string(msg))
		return a, nil

	case calendar.DaySelectedMsg:
		a.setStatus("selected " + msg.Day.String())
		a.refreshEvents()
		return a, a.notifyEvents(msg.Day)

	case calendar.RangeSelectedMsg:
		if msg.End == nil {
			a.setStatus(fmt.Sprintf("range %s .. (pick the other end)", msg.Start))
		} else {
			a.setStatus(fmt.Sprintf("range %s .. %s", msg.Start, msg.End))
		}
		a.refreshEvents()
		return a, nil

	case calendar.MonthSelectedMsg:
		a.setStatus(fmt.Sprintf("selected %04d-%02d", msg.Year, msg.Month))
		return a, nil

	case calendar.QuarterSelectedMsg:
		a.setStatus(fmt.Sprintf("selected %d Q%d", msg.Year, msg.Quarter))
		return a, nil

	case calendar.YearSelectedMsg:
		a.setStatus(fmt.Sprintf("selected %d", msg.Year))
		return a, nil

	case calendar.PageChangedMsg:
		a.setStatus(fmt.Sprintf("%s page %d/%d", msg.Mode, msg.Page+1, a.cal.MaxPage()+1))
		a.refreshEvents()
		return a, nil

	case calendar.HeaderTappedMsg:
		a.setStatus(msg.Mode.String() + " view")
		return a, nil

	case calendar.HeaderLongPressedMsg:
		// Jump back to the first page of the current view.
		return a, a.cal.SetPage(0)

	case calendar.FormatChangedMsg:
		a.setStatus(msg.Format.String() + " format")
		return a, nil

	case calendar.DayLongPressedMsg:
		a.setStatus("held " + msg.Day.String())
		return a, nil

	case calendar.DisabledDayTappedMsg:
		a.setError(msg.Day.String() + " is unavailable")
		return a, nil

	case calendar.DisabledDayLongPressedMsg:
		a.setError(msg.Day.String() + " is unavailable")
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.jumping {
		return a.handleGotoKey(msg)
	}

	switch msg.String() {
	case a.keymap.Quit.Key, "ctrl+c":
		a.cal.Dispose()
		return a, tea.Quit
	case a.keymap.Goto.Key:
		a.jumping = true
		a.gotoInput.SetValue("")
		return a, a.gotoInput.Focus()
	case a.keymap.Yank.Key:
		return a, a.yank()
	case a.keymap.Notify.Key:
		return a, a.notifyEvents(a.cal.Cursor())
	}

	var cmd tea.Cmd
	a.cal, cmd = a.cal.Update(msg)
	a.refreshEvents()
	return a, cmd
}

// handleGotoKey drives the go-to-date prompt: enter jumps, esc cancels.
func (a *App) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.jumping = false
		a.gotoInput.Blur()
		d, err := date.Parse(a.gotoInput.Value())
		if err != nil {
			a.setError("invalid date, use YYYY-MM-DD")
			return a, nil
		}
		if !a.cal.Bounds().Contains(d) {
			a.setError(d.String() + " is outside the calendar window")
			return a, nil
		}
		a.cal.SetFocusedDay(d)
		a.refreshEvents()
		a.setStatus("jumped to " + d.String())
		return a, nil
	case "esc":
		a.jumping = false
		a.gotoInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.gotoInput, cmd = a.gotoInput.Update(msg)
	return a, cmd
}

// eventsFor returns the configured event titles for a day.
func (a *App) eventsFor(d date.Date) []string {
	return a.cfg.Events[d.String()]
}

// refreshEvents rebuilds the event pane for the highlighted day.
func (a *App) refreshEvents() {
	d := a.cal.Cursor()
	titles := a.eventsFor(d)
	if len(titles) == 0 {
		a.events.SetContent(styles.HelpDesc.Render("no events on " + d.String()))
		return
	}

	width := a.events.Width
	if width <= 0 {
		width = 40
	}
	lines := make([]string, 0, len(titles))
	for _, title := range titles {
		lines = append(lines, styles.EventItem.Render("• "+truncateString(title, width-4)))
	}
	a.events.SetContent(strings.Join(lines, "\n"))
}

// yank copies the current selection to the system clipboard. A completed
// range wins over a single selection; with neither, the cursor day is used.
func (a *App) yank() tea.Cmd {
	var text string
	start, end := a.cal.RangeSelection()
	switch {
	case start != nil && end != nil:
		text = start.String() + "/" + end.String()
	case start != nil:
		text = start.String()
	case a.cal.SelectedDay() != nil:
		text = a.cal.SelectedDay().String()
	default:
		text = a.cal.Cursor().String()
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg(fmt.Sprintf("copy failed: %v", err))
		}
		return statusMsg("copied " + text)
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusIsErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusIsErr = true
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("table-calendar"))
	b.WriteString("\n\n")
	b.WriteString(a.cal.View())
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Events"))
	b.WriteString("\n")
	b.WriteString(a.events.View())
	b.WriteString("\n\n")

	if a.jumping {
		b.WriteString(styles.Prompt.Render("Go to: "))
		b.WriteString(a.gotoInput.View())
		b.WriteString("\n")
	}

	if a.status != "" {
		style := styles.Status
		if a.statusIsErr {
			style = styles.StatusError
		}
		b.WriteString(style.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpDesc.Render(a.keymap.HelpLine()))
	b.WriteString("\n")

	return b.String()
}
