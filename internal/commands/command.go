// Package commands records reversible collection mutations for undo/redo.
package commands

import (
	"sort"

	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/model"
)

// Command pairs a forward mutation with its exact inverse. Do and Undo are
// called alternately by the log, never twice in a row.
type Command interface {
	Do(*collection.Collection)
	Undo(*collection.Collection)
}

// Log is the single-history undo/redo stack. Applying a new command clears
// the redo stack; undo and redo on empty stacks are no-ops. Depth is
// unbounded.
type Log struct {
	src  *collection.Collection
	undo []Command
	redo []Command
}

func NewLog(src *collection.Collection) *Log {
	return &Log{src: src}
}

// Apply runs the command forward and makes it the next undo candidate.
func (l *Log) Apply(cmd Command) {
	cmd.Do(l.src)
	l.undo = append(l.undo, cmd)
	l.redo = l.redo[:0]
}

func (l *Log) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	cmd := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	cmd.Undo(l.src)
	l.redo = append(l.redo, cmd)
	return true
}

func (l *Log) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	cmd := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	cmd.Do(l.src)
	l.undo = append(l.undo, cmd)
	return true
}

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// AddTask appends a task; undo removes it again.
type AddTask struct {
	Task   model.Task
	handle collection.Handle
}

func (c *AddTask) Do(src *collection.Collection) {
	c.handle = src.Add(c.Task)
}

func (c *AddTask) Undo(src *collection.Collection) {
	_, _, _ = src.Remove(c.handle)
}

// Handle reports where the task landed after the most recent Do.
func (c *AddTask) Handle() collection.Handle { return c.handle }

type removedTask struct {
	task     model.Task
	position int
}

// RemoveTasks deletes a set of tasks; undo re-inserts each at the position
// it originally occupied, so placement survives the round trip.
type RemoveTasks struct {
	Handles []collection.Handle
	removed []removedTask
}

func (c *RemoveTasks) Do(src *collection.Collection) {
	wanted := make(map[collection.Handle]bool, len(c.Handles))
	for _, h := range c.Handles {
		wanted[h] = true
	}
	// Walk back to front so removals never shift a position recorded
	// earlier; what we capture are the pre-removal positions.
	c.removed = c.removed[:0]
	for pos := src.Len() - 1; pos >= 0; pos-- {
		h, _ := src.At(pos)
		if !wanted[h] {
			continue
		}
		task, at, err := src.Remove(h)
		if err != nil {
			continue
		}
		c.removed = append(c.removed, removedTask{task: task, position: at})
	}
}

func (c *RemoveTasks) Undo(src *collection.Collection) {
	// Ascending position order keeps every later insertion point valid.
	restore := make([]removedTask, len(c.removed))
	copy(restore, c.removed)
	sort.SliceStable(restore, func(i, j int) bool {
		return restore[i].position < restore[j].position
	})
	fresh := make([]collection.Handle, 0, len(restore))
	for _, r := range restore {
		fresh = append(fresh, src.Insert(r.position, r.task))
	}
	// Redo must target the re-inserted copies, not the dead handles.
	c.Handles = fresh
}

// Removed returns the tasks captured by the most recent Do, in removal
// order.
func (c *RemoveTasks) Removed() []model.Task {
	out := make([]model.Task, 0, len(c.removed))
	for _, r := range c.removed {
		out = append(out, r.task)
	}
	return out
}
