package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("model: task title is required")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Rank is the total order used by priority sorting and priority>= queries.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Normal"
	}
}

// ParsePriority maps a priority name to its level, case-insensitively.
// Unknown names fall back to Normal so a single bad record never fails a load.
func ParsePriority(name string) Priority {
	p := Priority(strings.ToUpper(strings.TrimSpace(name)))
	if !p.IsValid() {
		return PriorityNormal
	}
	return p
}

type Subtask struct {
	Title string
	Done  bool
}

type Task struct {
	Title      string
	Completed  bool
	Priority   Priority
	DueAt      *time.Time
	CreatedAt  time.Time
	Note       string
	Tags       []string
	Subtasks   []Subtask
	Recurrence Rule
}

// NewTask builds a task with the title collapsed to a single line.
func NewTask(title string) (Task, error) {
	t := OneLine(title)
	if t == "" {
		return Task{}, ErrEmptyTitle
	}
	return Task{
		Title:      t,
		Priority:   PriorityNormal,
		CreatedAt:  time.Now(),
		Recurrence: RuleNone,
	}, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// AddTag inserts a tag unless it is blank or already present. Tags are
// case-sensitive.
func (t *Task) AddTag(tag string) {
	name := strings.TrimSpace(tag)
	if name == "" {
		return
	}
	for _, existing := range t.Tags {
		if existing == name {
			return
		}
	}
	t.Tags = append(t.Tags, name)
}

func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t *Task) AddSubtask(title string) {
	name := strings.TrimSpace(title)
	if name == "" {
		return
	}
	t.Subtasks = append(t.Subtasks, Subtask{Title: name})
}

// ToggleSubtask flips the done flag at index; out-of-range is a no-op.
func (t *Task) ToggleSubtask(index int) {
	if index < 0 || index >= len(t.Subtasks) {
		return
	}
	t.Subtasks[index].Done = !t.Subtasks[index].Done
}

// OneLine collapses newlines to spaces and trims the result.
func OneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

// StartOfDay truncates an instant to local midnight, the granularity every
// due date carries.
func StartOfDay(at time.Time) time.Time {
	y, m, d := at.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, at.Location())
}

// ParseDueDate parses YYYY-MM-DD into local midnight. Blank or malformed
// input returns nil.
func ParseDueDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}

func FormatDueDate(at *time.Time) string {
	if at == nil {
		return ""
	}
	return at.Format("2006-01-02")
}
