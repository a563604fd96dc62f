package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewTaskCollapsesNewlines(t *testing.T) {
	task, err := NewTask("buy\nmilk\r\ntoday")
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Title != "buy milk  today" {
		t.Fatalf("unexpected title: %q", task.Title)
	}
	if task.Priority != PriorityNormal {
		t.Fatalf("unexpected default priority: %q", task.Priority)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if task.Recurrence != RuleNone {
		t.Fatalf("recurrence = %q, want %q", task.Recurrence, RuleNone)
	}
}

func TestNewTaskRejectsBlankTitle(t *testing.T) {
	if _, err := NewTask("  \n\r "); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestValidateRejectsInvalidPriority(t *testing.T) {
	task := Task{Title: "ok", Priority: Priority("BOGUS")}
	if err := task.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	order := []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Fatalf("rank not strictly increasing at %s -> %s", order[i-1], order[i])
		}
	}
}

func TestParsePriorityDefaultsToNormal(t *testing.T) {
	cases := []struct {
		in   string
		want Priority
	}{
		{"urgent", PriorityUrgent},
		{"High", PriorityHigh},
		{" low ", PriorityLow},
		{"NORMAL", PriorityNormal},
		{"bogus", PriorityNormal},
		{"", PriorityNormal},
	}
	for _, tc := range cases {
		if got := ParsePriority(tc.in); got != tc.want {
			t.Fatalf("ParsePriority(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestAddTagDeduplicatesAndSkipsBlank(t *testing.T) {
	var task Task
	task.AddTag("work")
	task.AddTag("work")
	task.AddTag("  ")
	task.AddTag("Work")
	if len(task.Tags) != 2 {
		t.Fatalf("unexpected tags: %v", task.Tags)
	}
	if !task.HasTag("work") || !task.HasTag("Work") {
		t.Fatalf("tags are case-sensitive, got %v", task.Tags)
	}
	if task.HasTag("home") {
		t.Fatal("unexpected tag match")
	}
}

func TestSubtaskHelpers(t *testing.T) {
	var task Task
	task.AddSubtask("  draft outline ")
	task.AddSubtask("")
	if len(task.Subtasks) != 1 || task.Subtasks[0].Title != "draft outline" {
		t.Fatalf("unexpected subtasks: %v", task.Subtasks)
	}
	task.ToggleSubtask(0)
	if !task.Subtasks[0].Done {
		t.Fatal("expected subtask done after toggle")
	}
	task.ToggleSubtask(5)
	task.ToggleSubtask(-1)
	if !task.Subtasks[0].Done {
		t.Fatal("out-of-range toggle must not change state")
	}
}

func TestParseDueDate(t *testing.T) {
	due := ParseDueDate("2025-03-01")
	if due == nil {
		t.Fatal("expected parsed due date")
	}
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("due = %v, want %v", due, want)
	}
	if ParseDueDate("") != nil || ParseDueDate("03/01/2025") != nil || ParseDueDate("2025-13-40") != nil {
		t.Fatal("malformed input must parse to nil")
	}
}

func TestStartOfDayTruncates(t *testing.T) {
	at := time.Date(2025, 6, 15, 17, 42, 9, 120, time.Local)
	got := StartOfDay(at)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("not midnight: %v", got)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 15 {
		t.Fatalf("date changed: %v", got)
	}
}
