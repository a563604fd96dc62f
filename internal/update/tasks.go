package update

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/taskline/internal/codec"
	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/export"
	"github.com/sandeepkv93/taskline/internal/model"
)

func (m *Model) addTask(input string) {
	task, err := model.QuickAdd(input)
	if err != nil {
		m.fail(err)
		return
	}
	cmd := &commands.AddTask{Task: task}
	m.Log.Apply(cmd)
	m.scheduleReminder(cmd.Handle())
	m.commit(fmt.Sprintf("added %q", task.Title))
	m.moveCursorTo(cmd.Handle())
}

// toggleAtCursor flips completion. A recurring task with a due date is not
// closed: its due date rolls forward to the next occurrence and the task
// stays active.
func (m *Model) toggleAtCursor() {
	h, ok := m.selected()
	if !ok {
		return
	}
	var rolled bool
	err := m.Tasks.Update(h, func(t *model.Task) {
		if !t.Completed {
			if next := t.Recurrence.NextOccurrence(t.DueAt); next != nil {
				t.DueAt = next
				rolled = true
				return
			}
		}
		t.Completed = !t.Completed
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.scheduleReminder(h)
	if rolled {
		task, _ := m.Tasks.Get(h)
		m.commit(fmt.Sprintf("rescheduled %q to %s", task.Title, model.FormatDueDate(task.DueAt)))
		return
	}
	m.commit("toggled")
}

func (m *Model) deleteAtCursor() {
	h, ok := m.selected()
	if !ok {
		return
	}
	cmd := &commands.RemoveTasks{Handles: []collection.Handle{h}}
	m.Log.Apply(cmd)
	if m.Scheduler != nil {
		m.Scheduler.Cancel(h)
	}
	removed := cmd.Removed()
	if len(removed) == 0 {
		m.Status = StatusBar{Text: "nothing deleted"}
		return
	}
	m.commit(fmt.Sprintf("deleted %q", removed[0].Title))
}

func (m *Model) undo() {
	if !m.Log.Undo() {
		m.Status = StatusBar{Text: "nothing to undo"}
		return
	}
	m.scheduleAllReminders()
	m.commit("undone")
}

func (m *Model) redo() {
	if !m.Log.Redo() {
		m.Status = StatusBar{Text: "nothing to redo"}
		return
	}
	m.scheduleAllReminders()
	m.commit("redone")
}

func (m *Model) archive() {
	n, err := codec.ArchiveCompleted(m.Cfg.ArchivePath, m.Tasks)
	if err != nil {
		m.fail(err)
		return
	}
	if n == 0 {
		m.Status = StatusBar{Text: "no completed tasks to archive"}
		return
	}
	m.commit(fmt.Sprintf("archived %d to %s", n, m.Cfg.ArchivePath))
}

func (m *Model) exportMarkdown() {
	tasks := make([]model.Task, 0, len(m.Visible))
	for _, h := range m.Visible {
		if task, err := m.Tasks.Get(h); err == nil {
			tasks = append(tasks, task)
		}
	}
	md := export.Markdown(tasks, export.Options{ShowNotes: m.ShowNotes})
	if err := os.WriteFile(m.Cfg.ExportPath, []byte(md), 0o644); err != nil {
		m.fail(fmt.Errorf("export: %w", err))
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("exported %d tasks to %s", len(tasks), m.Cfg.ExportPath)}
}

// commit is the write-through path every mutation funnels into: persist the
// collection, then rebuild the visible list.
func (m *Model) commit(status string) {
	if err := codec.Save(m.Cfg.StorePath, m.Tasks.Tasks()); err != nil {
		m.fail(err)
		return
	}
	m.Status = StatusBar{Text: status}
	m.refresh()
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func (m *Model) scheduleReminder(h collection.Handle) {
	if m.Scheduler == nil {
		return
	}
	task, err := m.Tasks.Get(h)
	if err != nil {
		m.Scheduler.Cancel(h)
		return
	}
	r, ok := m.fireTimeFor(task, h)
	if !ok {
		m.Scheduler.Cancel(h)
		return
	}
	if err := m.Scheduler.Schedule(r); err != nil {
		m.fail(err)
	}
}

func (m *Model) scheduleAllReminders() {
	if m.Scheduler == nil {
		return
	}
	for _, h := range m.Tasks.Handles() {
		m.scheduleReminder(h)
	}
}

func (m *Model) statusCounts() string {
	total := m.Tasks.Len()
	completed := 0
	for _, t := range m.Tasks.Tasks() {
		if t.Completed {
			completed++
		}
	}
	return fmt.Sprintf("%d tasks • %d completed", total, completed)
}
