package codec

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/taskline/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// LoadSQLite imports tasks from a taskd-style SQLite database so migrate can
// pull an existing database into the line-format store. Only the tasks table
// is read; reminders and recurrence rows have no line-format counterpart.
// Rows that fail to scan or parse are skipped like malformed lines.
func LoadSQLite(path string) ([]model.Task, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("codec: open sqlite %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT title, description, state, priority, due_at, created_at FROM tasks ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("codec: query tasks: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		var (
			title, state, priority string
			description            sql.NullString
			dueAt                  sql.NullString
			createdAt              string
		)
		if err := rows.Scan(&title, &description, &state, &priority, &dueAt, &createdAt); err != nil {
			continue
		}
		task := model.Task{
			Title:      model.OneLine(title),
			Completed:  state == "Done",
			Priority:   mapSQLitePriority(priority),
			Note:       description.String,
			Recurrence: model.RuleNone,
		}
		if task.Title == "" {
			continue
		}
		created, err := time.Parse(sqliteTimeLayout, createdAt)
		if err != nil {
			continue
		}
		task.CreatedAt = created
		if dueAt.Valid && dueAt.String != "" {
			if due, err := time.Parse(sqliteTimeLayout, dueAt.String); err == nil {
				midnight := model.StartOfDay(due.Local())
				task.DueAt = &midnight
			}
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// mapSQLitePriority translates the source database's level names; taskd uses
// Medium/Critical where taskline uses Normal/Urgent.
func mapSQLitePriority(name string) model.Priority {
	switch name {
	case "Medium":
		return model.PriorityNormal
	case "Critical":
		return model.PriorityUrgent
	default:
		return model.ParsePriority(name)
	}
}
