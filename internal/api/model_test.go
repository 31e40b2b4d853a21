package api_test

import (
	"encoding/json"
	"testing"

	"taskdeck/internal/api"
)

func TestParseDate(t *testing.T) {
	d, err := api.ParseDate("2026-08-29")
	if err != nil {
		t.Fatalf("ParseDate() err = %v", err)
	}
	if got := d.String(); got != "2026-08-29" {
		t.Fatalf("String() = %q, want %q", got, "2026-08-29")
	}
}

func TestParseDateEmpty(t *testing.T) {
	for _, v := range []string{"", "   "} {
		d, err := api.ParseDate(v)
		if err != nil {
			t.Fatalf("ParseDate(%q) err = %v", v, err)
		}
		if d != nil {
			t.Fatalf("ParseDate(%q) = %v, want nil", v, d)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := api.ParseDate("29/08/2026"); err == nil {
		t.Fatal("ParseDate() err = nil for malformed input, want error")
	}
}

func TestDraftMarshalNilDueDate(t *testing.T) {
	b, err := json.Marshal(api.Draft{Title: "x", Priority: api.PriorityLow, Status: api.StatusPending})
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if v, ok := m["due_date"]; !ok || v != nil {
		t.Fatalf("due_date = %v (present %t), want explicit null", v, ok)
	}
}

func TestDraftOfKeepsMutableFields(t *testing.T) {
	due, err := api.ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("ParseDate() err = %v", err)
	}
	task := api.Task{
		ID:          3,
		Title:       "Paint fence",
		Description: "white",
		Priority:    api.PriorityHigh,
		Status:      api.StatusInProgress,
		DueDate:     due,
		IsOverdue:   true,
	}
	d := api.DraftOf(task)
	want := api.Draft{
		Title:       "Paint fence",
		Description: "white",
		Priority:    api.PriorityHigh,
		Status:      api.StatusInProgress,
		DueDate:     due,
	}
	if d != want {
		t.Fatalf("DraftOf() = %+v, want %+v", d, want)
	}
}
