package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
)

// Client is the remote surface the UI drives. *api.Client implements
// it; tests substitute a recording fake.
type Client interface {
	ListTasks(ctx context.Context) ([]api.Task, error)
	FetchStats(ctx context.Context) (api.Stats, error)
	CreateTask(ctx context.Context, draft api.Draft) (api.Task, error)
	UpdateTask(ctx context.Context, id int64, draft api.Draft) (api.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	BulkUpdate(ctx context.Context, ids []int64, action string) error
}

type tasksLoadedMsg struct {
	tasks []api.Task
	err   error
}

type statsLoadedMsg struct {
	stats api.Stats
}

// mutationDoneMsg reports a successful write; note goes to the status
// line and a full reload follows.
type mutationDoneMsg struct {
	note string
}

type errMsg struct {
	err error
}

// Network calls run as commands: the update loop never blocks on I/O
// and there is no cancellation once a call is issued.

func (m Model) loadTasksCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		tasks, err := client.ListTasks(context.Background())
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		// Stats failures stay silent: the client logs them, the
		// counters fall back to zero.
		stats, _ := client.FetchStats(context.Background())
		return statsLoadedMsg{stats: stats}
	}
}

func (m Model) createCmd(draft api.Draft) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.CreateTask(context.Background(), draft); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{note: "Task created"}
	}
}

func (m Model) updateCmd(id int64, draft api.Draft, note string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.UpdateTask(context.Background(), id, draft); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{note: note}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteTask(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{note: "Task deleted"}
	}
}

func (m Model) bulkCmd(ids []int64, action, note string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.BulkUpdate(context.Background(), ids, action); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{note: note}
	}
}
