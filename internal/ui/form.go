package ui

import (
	"errors"
	"fmt"
	"strings"

	"taskdeck/internal/api"
)

// taskForm backs both the new-task form and the edit modal: one shared
// text input walks its fields, Enter on the last field submits. The
// edit form additionally exposes status; creation always forces
// "pending".
type taskForm struct {
	taskID      int64 // zero while creating
	title       string
	description string
	priority    string
	status      string
	due         string
	index       int
}

func newAddForm() taskForm {
	return taskForm{priority: api.PriorityMedium}
}

func newEditForm(t api.Task) taskForm {
	f := taskForm{
		taskID:      t.ID,
		title:       t.Title,
		description: t.Description,
		priority:    t.Priority,
		status:      t.Status,
	}
	if t.DueDate != nil {
		f.due = t.DueDate.String()
	}
	return f
}

func (f *taskForm) fields() []string {
	if f.taskID == 0 {
		return []string{
			"title",
			"description",
			"priority (low/medium/high)",
			"due date (YYYY-MM-DD)",
		}
	}
	return []string{
		"title",
		"description",
		"priority (low/medium/high)",
		"status (pending/in_progress/completed)",
		"due date (YYYY-MM-DD)",
	}
}

func (f *taskForm) slots() []*string {
	if f.taskID == 0 {
		return []*string{&f.title, &f.description, &f.priority, &f.due}
	}
	return []*string{&f.title, &f.description, &f.priority, &f.status, &f.due}
}

func (f *taskForm) currentLabel() string {
	return f.fields()[f.index]
}

func (f *taskForm) currentValue() string {
	return *f.slots()[f.index]
}

func (f *taskForm) valueAt(i int) string {
	return *f.slots()[i]
}

func (f *taskForm) setCurrent(v string) {
	*f.slots()[f.index] = v
}

// draft validates the form and builds the request payload. Creation
// submits with status "pending" regardless of anything else.
func (f *taskForm) draft() (api.Draft, error) {
	title := strings.TrimSpace(f.title)
	if title == "" {
		return api.Draft{}, errors.New("Title cannot be empty")
	}
	priority := strings.TrimSpace(f.priority)
	if priority == "" {
		priority = api.PriorityMedium
	}
	due, err := api.ParseDate(f.due)
	if err != nil {
		return api.Draft{}, fmt.Errorf("Due date invalid: %v", err)
	}

	d := api.Draft{
		Title:       title,
		Description: strings.TrimSpace(f.description),
		Priority:    priority,
		Status:      api.StatusPending,
		DueDate:     due,
	}
	if f.taskID != 0 {
		if status := strings.TrimSpace(f.status); status != "" {
			d.Status = status
		}
	}
	return d, nil
}
