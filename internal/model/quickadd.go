package model

import (
	"regexp"
	"strings"
	"time"
)

var quickAddToken = regexp.MustCompile(`[#@!]\S+`)

// QuickAdd parses a single capture line into a task:
//
//	ship report #work @2025-03-01 !high
//
// Tokens starting with # become tags, @YYYY-MM-DD sets the due date, and
// !high / !urgent / !low set the priority. Recognized tokens are stripped
// from the title; when stripping leaves nothing the raw input is kept
// verbatim so the task is never blank.
func QuickAdd(input string) (Task, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Task{}, ErrEmptyTitle
	}

	task := Task{
		Priority:   PriorityNormal,
		CreatedAt:  time.Now(),
		Recurrence: RuleNone,
	}
	for _, part := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(part, "#") && len(part) > 1:
			task.AddTag(part[1:])
		case strings.HasPrefix(part, "@") && len(part) > 1:
			if due := ParseDueDate(part[1:]); due != nil {
				task.DueAt = due
			}
		}
	}
	switch {
	case strings.Contains(raw, "!high"):
		task.Priority = PriorityHigh
	case strings.Contains(raw, "!urgent"):
		task.Priority = PriorityUrgent
	case strings.Contains(raw, "!low"):
		task.Priority = PriorityLow
	}

	task.Title = strings.TrimSpace(strings.Join(strings.Fields(quickAddToken.ReplaceAllString(raw, "")), " "))
	if task.Title == "" {
		task.Title = raw
	}
	return task, nil
}
