package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/query"
	"github.com/sandeepkv93/taskline/internal/scheduler"
	"github.com/sandeepkv93/taskline/internal/views"
)

func (m *Model) refresh() {
	m.Visible = query.Build(m.Tasks, m.Params)
	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) selected() (collection.Handle, bool) {
	if len(m.Visible) == 0 || m.Cursor >= len(m.Visible) {
		return 0, false
	}
	return m.Visible[m.Cursor], true
}

func (m *Model) moveCursorTo(h collection.Handle) {
	for i, v := range m.Visible {
		if v == h {
			m.Cursor = i
			return
		}
	}
}

func (m *Model) cursorUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

func (m *Model) cursorDown() {
	if m.Cursor < len(m.Visible)-1 {
		m.Cursor++
	}
}

func (m *Model) cycleFilter() {
	switch m.Params.Filter {
	case query.FilterAll:
		m.Params.Filter = query.FilterActive
	case query.FilterActive:
		m.Params.Filter = query.FilterCompleted
	default:
		m.Params.Filter = query.FilterAll
	}
	m.Cursor = 0
	m.refresh()
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.Params.Filter)}
}

func (m *Model) cycleSort() {
	switch m.Params.Sort {
	case query.SortAdded:
		m.Params.Sort = query.SortTitle
	case query.SortTitle:
		m.Params.Sort = query.SortDueSoon
	case query.SortDueSoon:
		m.Params.Sort = query.SortPriority
	default:
		m.Params.Sort = query.SortAdded
	}
	m.refresh()
	m.Status = StatusBar{Text: fmt.Sprintf("sort: %s", m.Params.Sort)}
}

func (m *Model) fireTimeFor(task model.Task, h collection.Handle) (scheduler.Reminder, bool) {
	return scheduler.FireTimeFor(task, h, m.now(), m.Cfg.ReminderHour)
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.captureMode = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		m.Status = StatusBar{Text: "add cancelled"}
		return m
	case "enter":
		m.addTask(m.quickAddInput.Value())
		m.quickAddInput.SetValue("")
		m.captureMode = false
		m.quickAddInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.Params.Query = ""
		m.Cursor = 0
		m.refresh()
		m.Status = StatusBar{Text: "search cleared"}
		return m
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	_ = cmd
	m.Params.Query = m.searchInput.Value()
	m.Cursor = 0
	m.refresh()
	return m
}

func (m *Model) renderListView() string {
	items := make([]views.ListItemData, 0, len(m.Visible))
	today := model.StartOfDay(m.now())
	for _, h := range m.Visible {
		task, err := m.Tasks.Get(h)
		if err != nil {
			continue
		}
		overdue := !task.Completed && task.DueAt != nil && task.DueAt.Before(today)
		items = append(items, views.ListItemData{
			Title:     task.Title,
			Completed: task.Completed,
			Priority:  task.Priority.Label(),
			Due:       model.FormatDueDate(task.DueAt),
			Tags:      task.Tags,
			Overdue:   overdue,
		})
	}

	quickAdd := ""
	if m.captureMode {
		quickAdd = m.quickAddInput.View()
	}
	search := ""
	if m.searchMode || m.Params.Query != "" {
		search = m.searchInput.View()
	}
	return views.RenderListPanel(views.ListPanelData{
		QuickAddView: quickAdd,
		SearchView:   search,
		Items:        items,
		Cursor:       m.Cursor,
		Filter:       string(m.Params.Filter),
		Sort:         string(m.Params.Sort),
		Query:        m.Params.Query,
	})
}

func (m *Model) renderDetailView() string {
	h, ok := m.selected()
	if !ok {
		return views.RenderDetailPanel(views.DetailPanelData{})
	}
	task, err := m.Tasks.Get(h)
	if err != nil {
		return views.RenderDetailPanel(views.DetailPanelData{})
	}
	subtasks := make([]views.SubtaskData, 0, len(task.Subtasks))
	for _, st := range task.Subtasks {
		subtasks = append(subtasks, views.SubtaskData{Title: st.Title, Done: st.Done})
	}
	recurrence := ""
	if task.Recurrence != model.RuleNone {
		recurrence = string(task.Recurrence)
	}
	return views.RenderDetailPanel(views.DetailPanelData{
		Title:      task.Title,
		Priority:   task.Priority.Label(),
		Due:        model.FormatDueDate(task.DueAt),
		Created:    task.CreatedAt.Format("2006-01-02"),
		Tags:       task.Tags,
		Recurrence: recurrence,
		NoteView:   views.RenderMarkdown(task.Note),
		ShowNote:   m.ShowNotes,
		Subtasks:   subtasks,
	})
}

func (m *Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	k := m.Cfg.Keys
	bindings := []string{
		fmt.Sprintf("[%s] add  [%s] search  [%s] toggle", k.Add, k.Search, "space"),
		fmt.Sprintf("[%s] delete  [%s] undo  [%s] redo", k.Delete, k.Undo, k.Redo),
		fmt.Sprintf("[%s] filter  [%s] sort  [%s] notes", k.Filter, k.Sort, k.Notes),
		fmt.Sprintf("[%s] archive  [%s] export  [%s] quit", k.Archive, k.Export, k.Quit),
	}
	return "\n" + views.RenderHelpPanel(views.HelpPanelData{
		Bindings: bindings,
		HelpView: views.RenderMarkdown(helpText),
	})
}

const helpText = `# taskline

Quick-add understands ` + "`#tag`" + `, ` + "`@YYYY-MM-DD`" + ` and ` + "`!high !urgent !low`" + `.

Search understands ` + "`tag:`" + `, ` + "`priority:`" + `, ` + "`priority>=`" + `, ` + "`due<`" + ` and ` + "`due>`" + `; anything else matches title and note.`

func waitForReminderCmd(ch <-chan scheduler.Reminder) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Reminder: r}
	}
}
