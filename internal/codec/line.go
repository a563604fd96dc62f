// Package codec serializes the task set. Two encodings share the model: a
// pipe-delimited line format used by the primary store and a JSON format
// used for export, import and the archive. Decoding is permissive in both:
// a malformed record is skipped, never fatal to the load.
package codec

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

const lineVersionPrefix = "v2|"

// EncodeLine renders one task as a v2 line:
//
//	v2|completed|priority|dueMillis|createdMillis|b64(title)|b64(note)
//
// Base64 keeps pipes and newlines in free text from colliding with the
// delimiters. The due field is empty when the task has no due date.
func EncodeLine(t model.Task) string {
	completed := "0"
	if t.Completed {
		completed = "1"
	}
	due := ""
	if t.DueAt != nil {
		due = strconv.FormatInt(t.DueAt.UnixMilli(), 10)
	}
	fields := []string{
		"v2",
		completed,
		string(t.Priority),
		due,
		strconv.FormatInt(t.CreatedAt.UnixMilli(), 10),
		base64.StdEncoding.EncodeToString([]byte(t.Title)),
		base64.StdEncoding.EncodeToString([]byte(t.Note)),
	}
	return strings.Join(fields, "|")
}

// DecodeLine parses a single stored line, current or legacy format. The
// second return is false for blank or malformed lines, which callers skip.
func DecodeLine(line string) (model.Task, bool) {
	if strings.TrimSpace(line) == "" {
		return model.Task{}, false
	}
	if strings.HasPrefix(line, lineVersionPrefix) {
		return decodeV2(line)
	}
	return decodeLegacy(line)
}

func decodeV2(line string) (model.Task, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 7 {
		return model.Task{}, false
	}
	title, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return model.Task{}, false
	}
	note, err := base64.StdEncoding.DecodeString(parts[6])
	if err != nil {
		return model.Task{}, false
	}

	task := model.Task{
		Title:      model.OneLine(string(title)),
		Completed:  parts[1] == "1",
		Priority:   model.ParsePriority(parts[2]),
		Note:       string(note),
		Recurrence: model.RuleNone,
	}
	if parts[3] != "" {
		millis, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return model.Task{}, false
		}
		due := time.UnixMilli(millis)
		task.DueAt = &due
	}
	if parts[4] == "" {
		task.CreatedAt = time.Now()
	} else {
		millis, err := strconv.ParseInt(parts[4], 10, 64)
		if err != nil {
			return model.Task{}, false
		}
		task.CreatedAt = time.UnixMilli(millis)
	}
	if task.Validate() != nil {
		return model.Task{}, false
	}
	return task, true
}

// decodeLegacy reads the pre-v2 shape, completed-flag '|' b64(title). Legacy
// records carry no priority, due date or note.
func decodeLegacy(line string) (model.Task, bool) {
	sep := strings.Index(line, "|")
	if sep <= 0 || sep >= len(line)-1 {
		return model.Task{}, false
	}
	title, err := base64.StdEncoding.DecodeString(line[sep+1:])
	if err != nil {
		return model.Task{}, false
	}
	task := model.Task{
		Title:      model.OneLine(string(title)),
		Completed:  line[0] == '1',
		Priority:   model.PriorityNormal,
		CreatedAt:  time.Now(),
		Recurrence: model.RuleNone,
	}
	if task.Validate() != nil {
		return model.Task{}, false
	}
	return task, true
}
