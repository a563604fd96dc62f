package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskline/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForReminderCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		// The reminder notice lives until the user does anything.
		m.lastReminder = nil
		if m.captureMode {
			return m.handleQuickAddKey(typed), nil
		}
		if m.searchMode {
			return m.handleSearchKey(typed), nil
		}
		return m.handleGlobalKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.fail(typed.Err)
		}
		return m, nil
	case ReminderDueMsg:
		// The timer goroutine never touches the collection; the event crosses
		// back onto the update loop here. A reminder for a since-deleted task
		// is dropped.
		if _, err := m.Tasks.Get(typed.Reminder.Handle); err == nil {
			r := typed.Reminder
			m.lastReminder = &r
			m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", r.Title)}
		}
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.Cfg.Keys
	switch msg.String() {
	case "ctrl+c", k.Quit:
		m.Quitting = true
		return m, tea.Quit
	case k.Add:
		m.captureMode = true
		m.quickAddInput.Focus()
		return m, nil
	case k.Search:
		m.searchMode = true
		m.searchInput.Focus()
		m.searchInput.SetValue(m.Params.Query)
		return m, nil
	case "up", k.Up:
		m.cursorUp()
		return m, nil
	case "down", k.Down:
		m.cursorDown()
		return m, nil
	case k.Toggle:
		m.toggleAtCursor()
		return m, nil
	case k.Delete:
		m.deleteAtCursor()
		return m, nil
	case k.Filter:
		m.cycleFilter()
		return m, nil
	case k.Sort:
		m.cycleSort()
		return m, nil
	case k.Undo:
		m.undo()
		return m, nil
	case k.Redo:
		m.redo()
		return m, nil
	case k.Archive:
		m.archive()
		return m, nil
	case k.Export:
		m.exportMarkdown()
		return m, nil
	case k.Notes:
		m.ShowNotes = !m.ShowNotes
		return m, nil
	case k.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	notification := ""
	if m.lastReminder != nil {
		notification = views.RenderNotification("reminder",
			fmt.Sprintf("%s @ %s", m.lastReminder.Title, m.lastReminder.FireAt.Format("15:04")))
	}

	k := m.Cfg.Keys
	history := ""
	if m.Log.CanUndo() {
		history += " | " + k.Undo + " undo"
	}
	if m.Log.CanRedo() {
		history += " | " + k.Redo + " redo"
	}
	return views.RenderApp(views.AppData{
		Title:         "taskline",
		Counts:        m.statusCounts(),
		ListPane:      m.renderListView(),
		DetailPane:    m.renderDetailView() + m.renderHelpIfVisible(),
		StatusLine:    m.Status.Text,
		StatusIsError: m.Status.IsError,
		Notification:  notification,
		Footer: fmt.Sprintf("keys: %s add | %s search | %s filter | %s sort | %s help | %s quit%s",
			k.Add, k.Search, k.Filter, k.Sort, k.Help, k.Quit, history),
	})
}
