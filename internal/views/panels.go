package views

import (
	"fmt"
	"strings"
)

type ListItemData struct {
	Title     string
	Completed bool
	Priority  string
	Due       string
	Tags      []string
	Overdue   bool
}

type ListPanelData struct {
	QuickAddView string
	SearchView   string
	Items        []ListItemData
	Cursor       int
	Filter       string
	Sort         string
	Query        string
}

type SubtaskData struct {
	Title string
	Done  bool
}

type DetailPanelData struct {
	Title      string
	Priority   string
	Due        string
	Created    string
	Tags       []string
	Recurrence string
	NoteView   string
	ShowNote   bool
	Subtasks   []SubtaskData
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.QuickAddView != "" {
		b.WriteString(data.QuickAddView + "\n")
	}
	if data.SearchView != "" {
		b.WriteString(data.SearchView + "\n")
	}
	b.WriteString(fmt.Sprintf("filter: %s | sort: %s", data.Filter, data.Sort))
	if data.Query != "" {
		b.WriteString(fmt.Sprintf(" | query: %s", data.Query))
	}
	b.WriteString("\n")

	if len(data.Items) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		box := "[ ]"
		if item.Completed {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, box, priorityBadge(item), item.Title))
		if item.Due != "" {
			b.WriteString(" due:" + item.Due)
		}
		for _, tag := range item.Tags {
			b.WriteString(" #" + tag)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderDetailPanel(data DetailPanelData) string {
	if strings.TrimSpace(data.Title) == "" {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString("title: " + data.Title + "\n")
	b.WriteString("priority: " + data.Priority + "\n")
	if data.Due != "" {
		b.WriteString("due: " + data.Due + "\n")
	}
	b.WriteString("created: " + data.Created + "\n")
	if len(data.Tags) > 0 {
		b.WriteString("tags: " + strings.Join(data.Tags, ",") + "\n")
	}
	if data.Recurrence != "" {
		b.WriteString("repeats: " + data.Recurrence + "\n")
	}
	if len(data.Subtasks) > 0 {
		b.WriteString("subtasks:\n")
		for _, st := range data.Subtasks {
			box := "[ ]"
			if st.Done {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", box, st.Title))
		}
	}
	if data.ShowNote && data.NoteView != "" {
		b.WriteString("\nnote:\n" + data.NoteView + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func priorityBadge(item ListItemData) string {
	if item.Overdue || item.Priority == "Urgent" {
		return "[RED]"
	}
	if item.Priority == "High" {
		return "[YELLOW]"
	}
	return "[GREEN]"
}
