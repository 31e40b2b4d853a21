package api

import "fmt"

// Failure is the shared shape of a failed round trip. Status holds the
// HTTP status code when the server answered, zero on transport failure.
type Failure struct {
	Op     string
	Status int
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// FetchError reports a failed task-list or stats read. The caller
// substitutes an empty result; it never aborts the UI.
type FetchError struct{ Failure }

// CreateError reports a failed task creation.
type CreateError struct{ Failure }

// UpdateError reports a failed task update.
type UpdateError struct{ Failure }

// DeleteError reports a failed task deletion.
type DeleteError struct{ Failure }

// BulkError reports a failed bulk update.
type BulkError struct{ Failure }
