// Package store holds the most recently fetched task sequence. It is
// the single source of truth for filtering and rendering; the reload
// path is its only writer.
package store

import "taskdeck/internal/api"

type Store struct {
	tasks []api.Task
}

func New() *Store {
	return &Store{}
}

// Replace overwrites the full sequence. Called only after a successful
// list fetch; a failed fetch replaces with nil.
func (s *Store) Replace(tasks []api.Task) {
	s.tasks = append([]api.Task(nil), tasks...)
}

// Current returns a copy of the sequence, so filtered projections never
// alias the store's contents.
func (s *Store) Current() []api.Task {
	return append([]api.Task(nil), s.tasks...)
}

// Find looks a task up by id. Linear scan; the list is small and never
// indexed.
func (s *Store) Find(id int64) (api.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return api.Task{}, false
}

func (s *Store) Len() int {
	return len(s.tasks)
}
