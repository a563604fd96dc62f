// Package query derives the visible ordering of the task collection. The
// engine is a pure function of the collection and the view parameters; it
// rebuilds from scratch on every call and never caches.
package query

import (
	"sort"
	"strings"

	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/model"
)

type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

type Sort string

const (
	SortAdded    Sort = "Added"
	SortTitle    Sort = "Title"
	SortDueSoon  Sort = "Due Soon"
	SortPriority Sort = "Priority"
)

type Params struct {
	Filter Filter
	Query  string
	Sort   Sort
}

// Build returns the handles of the tasks that pass the filter and query, in
// sort order. The sort is stable beyond the documented tie-breaks.
func Build(src *collection.Collection, p Params) []collection.Handle {
	type row struct {
		handle collection.Handle
		task   model.Task
	}

	query := strings.TrimSpace(p.Query)
	rows := make([]row, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		h, task := src.At(i)
		if p.Filter == FilterActive && task.Completed {
			continue
		}
		if p.Filter == FilterCompleted && !task.Completed {
			continue
		}
		if query != "" && !Matches(task, query) {
			continue
		}
		rows = append(rows, row{handle: h, task: task})
	}

	byTitle := func(i, j int) int {
		return strings.Compare(strings.ToLower(rows[i].task.Title), strings.ToLower(rows[j].task.Title))
	}
	switch p.Sort {
	case SortTitle:
		sort.SliceStable(rows, func(i, j int) bool {
			return byTitle(i, j) < 0
		})
	case SortDueSoon:
		sort.SliceStable(rows, func(i, j int) bool {
			di, dj := dueKey(rows[i].task), dueKey(rows[j].task)
			if di != dj {
				return di < dj
			}
			return byTitle(i, j) < 0
		})
	case SortPriority:
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := rows[i].task.Priority.Rank(), rows[j].task.Priority.Rank()
			if ri != rj {
				return ri > rj
			}
			return byTitle(i, j) < 0
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].task.CreatedAt.Before(rows[j].task.CreatedAt)
		})
	}

	out := make([]collection.Handle, len(rows))
	for i, r := range rows {
		out[i] = r.handle
	}
	return out
}

// dueKey orders due dates ascending with absent dates after every present
// one.
func dueKey(t model.Task) int64 {
	if t.DueAt == nil {
		return int64(^uint64(0) >> 1)
	}
	return t.DueAt.UnixMilli()
}

// Matches reports whether a task satisfies every whitespace-separated token
// of the query. Recognized operators:
//
//	tag:<name>          exact tag, case-sensitive
//	priority:<level>    exact priority level
//	priority>=<level>   rank at least <level>
//	due<YYYY-MM-DD      due strictly before the date
//	due>YYYY-MM-DD      due strictly after the date
//
// Anything else is a case-insensitive substring match over title and note.
// A token that fails excludes the task outright.
func Matches(task model.Task, query string) bool {
	for _, token := range strings.Fields(query) {
		switch {
		case strings.HasPrefix(token, "tag:"):
			if !task.HasTag(strings.TrimPrefix(token, "tag:")) {
				return false
			}
		case strings.HasPrefix(token, "priority>="):
			level := model.Priority(strings.ToUpper(strings.TrimPrefix(token, "priority>=")))
			if !level.IsValid() || task.Priority.Rank() < level.Rank() {
				return false
			}
		case strings.HasPrefix(token, "priority:"):
			level := model.Priority(strings.ToUpper(strings.TrimPrefix(token, "priority:")))
			if !level.IsValid() || task.Priority != level {
				return false
			}
		case strings.HasPrefix(token, "due<"):
			cutoff := model.ParseDueDate(strings.TrimPrefix(token, "due<"))
			if cutoff == nil || task.DueAt == nil || !task.DueAt.Before(*cutoff) {
				return false
			}
		case strings.HasPrefix(token, "due>"):
			cutoff := model.ParseDueDate(strings.TrimPrefix(token, "due>"))
			if cutoff == nil || task.DueAt == nil || !task.DueAt.After(*cutoff) {
				return false
			}
		default:
			haystack := strings.ToLower(task.Title + "\n" + task.Note)
			if !strings.Contains(haystack, strings.ToLower(token)) {
				return false
			}
		}
	}
	return true
}
