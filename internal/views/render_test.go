package views

import (
	"strings"
	"testing"
)

func TestRenderAppMarksErrorStatus(t *testing.T) {
	out := RenderApp(AppData{
		Title:         "taskline",
		ListPane:      "tasks",
		DetailPane:    "detail",
		StatusLine:    "save failed",
		StatusIsError: true,
	})
	if !strings.Contains(out, "error: save failed") {
		t.Fatalf("error status not marked:\n%s", out)
	}

	out = RenderApp(AppData{Title: "taskline", StatusLine: "saved"})
	if strings.Contains(out, "error:") {
		t.Fatalf("plain status must not carry the error marker:\n%s", out)
	}
}

func TestRenderAppOmitsEmptySections(t *testing.T) {
	bare := RenderApp(AppData{Title: "taskline", ListPane: "a", DetailPane: "b"})
	full := RenderApp(AppData{
		Title:        "taskline",
		Counts:       "3 tasks • 1 completed",
		ListPane:     "a",
		DetailPane:   "b",
		StatusLine:   "ok",
		Notification: "notification: [REMINDER] Pay rent",
		Footer:       "keys: q quit",
	})
	if strings.Count(bare, "\n") >= strings.Count(full, "\n") {
		t.Fatal("empty sections should not add lines")
	}
	for _, want := range []string{"3 tasks • 1 completed", "Pay rent", "keys: q quit"} {
		if !strings.Contains(full, want) {
			t.Fatalf("output missing %q:\n%s", want, full)
		}
	}
}

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if got := RenderMarkdown("   \n  "); got != "" {
		t.Fatalf("blank markdown rendered %q", got)
	}
}
