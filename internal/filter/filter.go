// Package filter derives a view over a task sequence from the user's
// search text and categorical filters. Pure: no network, no mutation.
package filter

import (
	"strings"

	"taskdeck/internal/api"
)

// Criteria are the three ANDed predicates. Empty fields impose no
// constraint.
type Criteria struct {
	Query    string
	Status   string
	Priority string
}

func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Status == "" && c.Priority == ""
}

// Apply returns the subsequence of tasks satisfying every active
// predicate, preserving input order.
func (c Criteria) Apply(tasks []api.Task) []api.Task {
	q := strings.ToLower(c.Query)
	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func (c Criteria) matches(t api.Task, q string) bool {
	if q != "" &&
		!strings.Contains(strings.ToLower(t.Title), q) &&
		!strings.Contains(strings.ToLower(t.Description), q) {
		return false
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	return true
}
