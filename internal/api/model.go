package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a task record as the server reports it. ID and IsOverdue are
// server-owned; the client never computes or rewrites them.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     *Date  `json:"due_date"`
	IsOverdue   bool   `json:"is_overdue"`
}

// Draft carries the mutable fields of a task for create and update calls.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     *Date  `json:"due_date"`
}

// DraftOf copies a task's mutable fields into a draft, ready to be
// re-submitted with individual fields changed.
func DraftOf(t Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// Stats are the server-computed aggregate counters. Fetched on every
// load, never cached.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component, serialized as
// "2006-01-02" on the wire. A nil *Date means no deadline.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields nil.
func ParseDate(v string) (*Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	d.Time = t
	return nil
}
