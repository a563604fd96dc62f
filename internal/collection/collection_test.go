package collection

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/taskline/internal/model"
)

func mustTask(t *testing.T, title string) model.Task {
	t.Helper()
	task, err := model.NewTask(title)
	if err != nil {
		t.Fatalf("new task %q: %v", title, err)
	}
	return task
}

func TestAddAssignsDistinctHandles(t *testing.T) {
	c := New()
	a := c.Add(mustTask(t, "first"))
	b := c.Add(mustTask(t, "second"))
	if a == b {
		t.Fatalf("handles must be distinct: %v", a)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	got, err := c.Get(b)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "second" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestRemoveReportsOriginalPosition(t *testing.T) {
	c := New()
	c.Add(mustTask(t, "a"))
	b := c.Add(mustTask(t, "b"))
	c.Add(mustTask(t, "c"))

	removed, pos, err := c.Remove(b)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Title != "b" || pos != 1 {
		t.Fatalf("removed %q at %d, want b at 1", removed.Title, pos)
	}
	if _, err := c.Get(b); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestInsertRestoresPlacement(t *testing.T) {
	c := New()
	c.Add(mustTask(t, "a"))
	c.Add(mustTask(t, "c"))
	c.Insert(1, mustTask(t, "b"))

	titles := make([]string, 0, c.Len())
	for _, task := range c.Tasks() {
		titles = append(titles, task.Title)
	}
	if titles[0] != "a" || titles[1] != "b" || titles[2] != "c" {
		t.Fatalf("unexpected order: %v", titles)
	}

	// Out-of-range positions clamp instead of panicking.
	c.Insert(-5, mustTask(t, "front"))
	c.Insert(99, mustTask(t, "back"))
	if _, first := c.At(0); first.Title != "front" {
		t.Fatalf("clamped front insert failed: %+v", first)
	}
	if _, last := c.At(c.Len() - 1); last.Title != "back" {
		t.Fatalf("clamped back insert failed: %+v", last)
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	c := New()
	h := c.Add(mustTask(t, "draft"))
	if err := c.Update(h, func(task *model.Task) {
		task.Completed = true
		task.AddTag("work")
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := c.Get(h)
	if !got.Completed || !got.HasTag("work") {
		t.Fatalf("mutation lost: %+v", got)
	}

	if err := c.Update(Handle(999), func(*model.Task) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceAllAssignsFreshHandles(t *testing.T) {
	c := New()
	old := c.Add(mustTask(t, "stale"))
	c.ReplaceAll([]model.Task{mustTask(t, "x"), mustTask(t, "y")})
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	if _, err := c.Get(old); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old handle must be invalid, got %v", err)
	}
	handles := c.Handles()
	if len(handles) != 2 || handles[0] == handles[1] {
		t.Fatalf("unexpected handles: %v", handles)
	}
}

func TestRemoveCompleted(t *testing.T) {
	c := New()
	a := mustTask(t, "done one")
	a.Completed = true
	b := mustTask(t, "open")
	d := mustTask(t, "done two")
	d.Completed = true
	c.ReplaceAll([]model.Task{a, b, d})

	removed := c.RemoveCompleted()
	if len(removed) != 2 || removed[0].Title != "done one" || removed[1].Title != "done two" {
		t.Fatalf("unexpected removed set: %v", removed)
	}
	if c.Len() != 1 {
		t.Fatalf("live len = %d, want 1", c.Len())
	}
	if _, task := c.At(0); task.Completed {
		t.Fatal("live set still contains a completed task")
	}
}
