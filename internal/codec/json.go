package codec

import (
	"encoding/json"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

type subtaskJSON struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type taskJSON struct {
	Title           string        `json:"title"`
	Completed       bool          `json:"completed"`
	Priority        string        `json:"priority"`
	DueAtMillis     *int64        `json:"dueAtMillis"`
	CreatedAtMillis int64         `json:"createdAtMillis"`
	Note            *string       `json:"note"`
	Tags            []string      `json:"tags"`
	Subtasks        []subtaskJSON `json:"subtasks"`
	Recurrence      *string       `json:"recurrence"`
}

// EncodeJSON renders the task set as a JSON array carrying the full model:
// tags, subtasks and recurrence, which the line format does not store.
func EncodeJSON(tasks []model.Task) ([]byte, error) {
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toJSON(t))
	}
	return json.MarshalIndent(out, "", "  ")
}

// DecodeJSON reads a JSON task array. Absent optional fields default to
// empty; an element that fails to decode is skipped rather than failing the
// whole document.
func DecodeJSON(data []byte) ([]model.Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(raw))
	for _, element := range raw {
		var rec taskJSON
		if err := json.Unmarshal(element, &rec); err != nil {
			continue
		}
		task := fromJSON(rec)
		if task.Validate() != nil {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func toJSON(t model.Task) taskJSON {
	rec := taskJSON{
		Title:           t.Title,
		Completed:       t.Completed,
		Priority:        string(t.Priority),
		CreatedAtMillis: t.CreatedAt.UnixMilli(),
		Tags:            t.Tags,
		Subtasks:        make([]subtaskJSON, 0, len(t.Subtasks)),
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if t.DueAt != nil {
		millis := t.DueAt.UnixMilli()
		rec.DueAtMillis = &millis
	}
	if t.Note != "" {
		note := t.Note
		rec.Note = &note
	}
	for _, s := range t.Subtasks {
		rec.Subtasks = append(rec.Subtasks, subtaskJSON{Title: s.Title, Done: s.Done})
	}
	if t.Recurrence != "" && t.Recurrence != model.RuleNone {
		name := string(t.Recurrence)
		rec.Recurrence = &name
	}
	return rec
}

func fromJSON(rec taskJSON) model.Task {
	task := model.Task{
		Title:      rec.Title,
		Completed:  rec.Completed,
		Priority:   model.ParsePriority(rec.Priority),
		Recurrence: model.RuleNone,
	}
	if rec.DueAtMillis != nil {
		due := time.UnixMilli(*rec.DueAtMillis)
		task.DueAt = &due
	}
	if rec.CreatedAtMillis != 0 {
		task.CreatedAt = time.UnixMilli(rec.CreatedAtMillis)
	} else {
		task.CreatedAt = time.Now()
	}
	if rec.Note != nil {
		task.Note = *rec.Note
	}
	for _, tag := range rec.Tags {
		task.AddTag(tag)
	}
	for _, s := range rec.Subtasks {
		task.Subtasks = append(task.Subtasks, model.Subtask(s))
	}
	if rec.Recurrence != nil {
		task.Recurrence = model.ParseRule(*rec.Recurrence)
	}
	return task
}
