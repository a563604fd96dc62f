// Package export renders a view of the task collection as a markdown
// checklist. The projection is one-way and lossy; there is no import path.
package export

import (
	"strings"

	"github.com/sandeepkv93/taskline/internal/model"
)

// Options is the explicit view configuration for a render; callers pass it
// per call rather than toggling shared state.
type Options struct {
	ShowNotes bool
}

// Markdown renders tasks in the order given, one checklist item per task:
//
//	- [ ] Title (due: 2025-03-01) #tag1 #tag2
//
// Completed tasks use [x]. When ShowNotes is set, a note follows as an
// indented continuation block.
func Markdown(tasks []model.Task, opts Options) string {
	var b strings.Builder
	for _, t := range tasks {
		if t.Completed {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(t.Title)
		if t.DueAt != nil {
			b.WriteString(" (due: ")
			b.WriteString(model.FormatDueDate(t.DueAt))
			b.WriteString(")")
		}
		for _, tag := range t.Tags {
			b.WriteString(" #")
			b.WriteString(tag)
		}
		b.WriteByte('\n')
		if opts.ShowNotes && strings.TrimSpace(t.Note) != "" {
			b.WriteString("  ")
			b.WriteString(strings.ReplaceAll(t.Note, "\n", "\n  "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
