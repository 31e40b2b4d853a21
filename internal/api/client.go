// Package api implements the HTTP JSON client for the remote task
// manager. Each operation is a single round trip: no retries, no
// timeouts, no response-body error parsing.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Bulk actions understood by the /bulk-update/ endpoint.
const (
	BulkComplete = "complete"
	BulkDelete   = "delete"
	BulkPending  = "pending"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8000/api". A nil logger discards everything.
func New(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// ListTasks fetches the full task list. On any failure it logs, and
// returns a nil slice with a FetchError; the caller decides whether to
// surface it.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	status, err := c.do(ctx, http.MethodGet, "/tasks/", nil, &tasks)
	if err != nil {
		c.log.Error("task list fetch failed", "status", status, "error", err)
		return nil, &FetchError{Failure{Op: "list tasks", Status: status, Err: err}}
	}
	return tasks, nil
}

// FetchStats fetches the aggregate counters. On failure it logs and
// returns zero stats with a FetchError.
func (c *Client) FetchStats(ctx context.Context) (Stats, error) {
	var stats Stats
	status, err := c.do(ctx, http.MethodGet, "/stats/", nil, &stats)
	if err != nil {
		c.log.Error("stats fetch failed", "status", status, "error", err)
		return Stats{}, &FetchError{Failure{Op: "fetch stats", Status: status, Err: err}}
	}
	return stats, nil
}

// CreateTask submits a draft and returns the server-created task.
func (c *Client) CreateTask(ctx context.Context, draft Draft) (Task, error) {
	var created Task
	status, err := c.do(ctx, http.MethodPost, "/tasks/", draft, &created)
	if err != nil {
		return Task{}, &CreateError{Failure{Op: "create task", Status: status, Err: err}}
	}
	return created, nil
}

// UpdateTask replaces all mutable fields of the task with the draft's.
func (c *Client) UpdateTask(ctx context.Context, id int64, draft Draft) (Task, error) {
	var updated Task
	status, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/", id), draft, &updated)
	if err != nil {
		return Task{}, &UpdateError{Failure{Op: "update task", Status: status, Err: err}}
	}
	return updated, nil
}

// DeleteTask removes the task on the server.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	status, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d/", id), nil, nil)
	if err != nil {
		return &DeleteError{Failure{Op: "delete task", Status: status, Err: err}}
	}
	return nil
}

// BulkUpdate applies one action (BulkComplete, BulkDelete or
// BulkPending) to every task named in ids.
func (c *Client) BulkUpdate(ctx context.Context, ids []int64, action string) error {
	body := struct {
		TaskIDs []int64 `json:"task_ids"`
		Action  string  `json:"action"`
	}{TaskIDs: ids, Action: action}

	status, err := c.do(ctx, http.MethodPost, "/bulk-update/", body, nil)
	if err != nil {
		return &BulkError{Failure{Op: "bulk update", Status: status, Err: err}}
	}
	return nil
}

// do performs one round trip. It returns the HTTP status code when a
// response arrived, and a non-nil error for transport failures, non-2xx
// statuses, and undecodable bodies.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
