package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/config"
	"github.com/sandeepkv93/taskline/internal/query"
	"github.com/sandeepkv93/taskline/internal/scheduler"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	Cfg       config.Config
	Tasks     *collection.Collection
	Log       *commands.Log
	Scheduler *scheduler.Engine
	Params    query.Params
	Visible   []collection.Handle
	Cursor    int

	ShowNotes   bool
	HelpVisible bool
	Status      StatusBar
	Quitting    bool
	LastError   error

	lastReminder *scheduler.Reminder

	quickAddInput textinput.Model
	searchInput   textinput.Model
	captureMode   bool
	searchMode    bool

	now func() time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Reminder scheduler.Reminder
}

func NewModel(cfg config.Config, tasks *collection.Collection, engine *scheduler.Engine) Model {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "Buy milk #errands @2026-09-01 !high"
	quickAdd.Prompt = "add> "
	quickAdd.CharLimit = 256

	search := textinput.New()
	search.Placeholder = "tag:work priority>=HIGH"
	search.Prompt = "search> "
	search.CharLimit = 128

	m := Model{
		Cfg:       cfg,
		Tasks:     tasks,
		Log:       commands.NewLog(tasks),
		Scheduler: engine,
		Params: query.Params{
			Filter: query.FilterAll,
			Sort:   query.SortAdded,
		},
		ShowNotes:     cfg.ShowNotes,
		quickAddInput: quickAdd,
		searchInput:   search,
		now:           time.Now,
	}
	m.refresh()
	m.scheduleAllReminders()
	return m
}
