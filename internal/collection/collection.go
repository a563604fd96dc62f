// Package collection holds the authoritative in-memory task set. Tasks are
// identified by opaque handles assigned at insertion; views and persistence
// reference tasks by handle or position and never own them.
package collection

import (
	"errors"

	"github.com/sandeepkv93/taskline/internal/model"
)

var ErrNotFound = errors.New("collection: task not found")

// Handle identifies a task for the lifetime of the process, independent of
// its current position.
type Handle int

type entry struct {
	handle Handle
	task   model.Task
}

type Collection struct {
	entries []entry
	nextID  Handle
}

func New() *Collection {
	return &Collection{nextID: 1}
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// Add appends a task and returns its handle.
func (c *Collection) Add(task model.Task) Handle {
	h := c.nextID
	c.nextID++
	c.entries = append(c.entries, entry{handle: h, task: task})
	return h
}

// Insert places a task at position pos, clamping to the valid range, and
// returns its handle. Undo uses it to restore a removed task's placement.
func (c *Collection) Insert(pos int, task model.Task) Handle {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.entries) {
		pos = len(c.entries)
	}
	h := c.nextID
	c.nextID++
	c.entries = append(c.entries, entry{})
	copy(c.entries[pos+1:], c.entries[pos:])
	c.entries[pos] = entry{handle: h, task: task}
	return h
}

// Remove deletes the task for handle and reports the position it occupied.
func (c *Collection) Remove(h Handle) (model.Task, int, error) {
	pos := c.position(h)
	if pos < 0 {
		return model.Task{}, 0, ErrNotFound
	}
	removed := c.entries[pos].task
	c.entries = append(c.entries[:pos], c.entries[pos+1:]...)
	return removed, pos, nil
}

func (c *Collection) Get(h Handle) (model.Task, error) {
	pos := c.position(h)
	if pos < 0 {
		return model.Task{}, ErrNotFound
	}
	return c.entries[pos].task, nil
}

// Update mutates the task for handle in place through the callback. The
// callback receives the only mutable reference; nothing outside the
// collection holds one.
func (c *Collection) Update(h Handle, mutate func(*model.Task)) error {
	pos := c.position(h)
	if pos < 0 {
		return ErrNotFound
	}
	mutate(&c.entries[pos].task)
	return nil
}

// At returns the task and handle at position pos in collection order.
func (c *Collection) At(pos int) (Handle, model.Task) {
	e := c.entries[pos]
	return e.handle, e.task
}

// Handles returns every handle in collection order.
func (c *Collection) Handles() []Handle {
	out := make([]Handle, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.handle
	}
	return out
}

// Tasks returns a copy of the task values in collection order.
func (c *Collection) Tasks() []model.Task {
	out := make([]model.Task, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.task
	}
	return out
}

// ReplaceAll swaps the whole collection for the given tasks, assigning fresh
// handles. Load uses it once at startup.
func (c *Collection) ReplaceAll(tasks []model.Task) {
	c.entries = make([]entry, 0, len(tasks))
	for _, task := range tasks {
		c.entries = append(c.entries, entry{handle: c.nextID, task: task})
		c.nextID++
	}
}

// RemoveCompleted drops every completed task and returns them in collection
// order. Archive and clear-completed share it.
func (c *Collection) RemoveCompleted() []model.Task {
	kept := c.entries[:0]
	var removed []model.Task
	for _, e := range c.entries {
		if e.task.Completed {
			removed = append(removed, e.task)
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return removed
}

func (c *Collection) position(h Handle) int {
	for i, e := range c.entries {
		if e.handle == h {
			return i
		}
	}
	return -1
}
