package codec

import (
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

func richTask() model.Task {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	return model.Task{
		Title:     "Plan offsite",
		Completed: false,
		Priority:  model.PriorityHigh,
		DueAt:     &due,
		CreatedAt: time.UnixMilli(1720000000000),
		Note:      "venue | catering\nsecond line",
		Tags:      []string{"work", "travel"},
		Subtasks: []model.Subtask{
			{Title: "book venue", Done: true},
			{Title: "send invites", Done: false},
		},
		Recurrence: model.RuleMonthly,
	}
}

func TestJSONRoundTripAllFields(t *testing.T) {
	want := richTask()
	data, err := EncodeJSON([]model.Task{want})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d tasks, want 1", len(decoded))
	}
	got := decoded[0]
	if got.Title != want.Title || got.Completed != want.Completed || got.Priority != want.Priority || got.Note != want.Note {
		t.Fatalf("scalar fields lost:\n got %+v\nwant %+v", got, want)
	}
	if got.DueAt.UnixMilli() != want.DueAt.UnixMilli() || got.CreatedAt.UnixMilli() != want.CreatedAt.UnixMilli() {
		t.Fatalf("instants lost: %v / %v", got.DueAt, got.CreatedAt)
	}
	if !reflect.DeepEqual(got.Tags, want.Tags) {
		t.Fatalf("tags = %v, want %v", got.Tags, want.Tags)
	}
	if !reflect.DeepEqual(got.Subtasks, want.Subtasks) {
		t.Fatalf("subtasks = %v, want %v", got.Subtasks, want.Subtasks)
	}
	if got.Recurrence != model.RuleMonthly {
		t.Fatalf("recurrence = %s, want MONTHLY", got.Recurrence)
	}
}

func TestJSONRoundTripMinimalTask(t *testing.T) {
	want := model.Task{
		Title:      "bare",
		Priority:   model.PriorityNormal,
		CreatedAt:  time.UnixMilli(1720000000000),
		Recurrence: model.RuleNone,
	}
	data, err := EncodeJSON([]model.Task{want})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := decoded[0]
	if got.DueAt != nil || got.Note != "" || len(got.Tags) != 0 || len(got.Subtasks) != 0 {
		t.Fatalf("optional fields not empty: %+v", got)
	}
	if got.Recurrence != model.RuleNone {
		t.Fatalf("recurrence = %s, want NONE", got.Recurrence)
	}
}

func TestDecodeJSONToleratesAbsentFields(t *testing.T) {
	data := []byte(`[{"title":"sparse","completed":true}]`)
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := decoded[0]
	if got.Title != "sparse" || !got.Completed {
		t.Fatalf("unexpected task: %+v", got)
	}
	if got.Priority != model.PriorityNormal {
		t.Fatalf("priority = %s, want NORMAL default", got.Priority)
	}
	if got.Recurrence != model.RuleNone {
		t.Fatalf("recurrence = %s, want NONE default", got.Recurrence)
	}
	if got.DueAt != nil || got.Note != "" || len(got.Tags) != 0 || len(got.Subtasks) != 0 {
		t.Fatalf("absent fields must default empty: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("absent createdAtMillis must default to now")
	}
}

func TestDecodeJSONNullFields(t *testing.T) {
	data := []byte(`[{"title":"nullish","completed":false,"priority":"LOW","dueAtMillis":null,"createdAtMillis":1720000000000,"note":null,"tags":null,"subtasks":null,"recurrence":null}]`)
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := decoded[0]
	if got.DueAt != nil || got.Note != "" || len(got.Tags) != 0 || len(got.Subtasks) != 0 || got.Recurrence != model.RuleNone {
		t.Fatalf("null fields must decode empty: %+v", got)
	}
	if got.Priority != model.PriorityLow {
		t.Fatalf("priority = %s, want LOW", got.Priority)
	}
}

func TestDecodeJSONSkipsMalformedElements(t *testing.T) {
	data := []byte(`[{"title":"good","completed":false},42,"nope",{"title":"   ","completed":false},{"title":"also good","completed":true}]`)
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Title != "good" || decoded[1].Title != "also good" {
		t.Fatalf("unexpected survivors: %+v", decoded)
	}
}

func TestDecodeJSONUnknownEnumNames(t *testing.T) {
	data := []byte(`[{"title":"odd","priority":"SEVERE","recurrence":"FORTNIGHTLY","createdAtMillis":1720000000000}]`)
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := decoded[0]
	if got.Priority != model.PriorityNormal || got.Recurrence != model.RuleNone {
		t.Fatalf("unknown names must default: %+v", got)
	}
}

func TestDecodeJSONRejectsNonArray(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"title":"obj"}`)); err == nil {
		t.Fatal("expected error for non-array document")
	}
}
