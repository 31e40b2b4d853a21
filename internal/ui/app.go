// Package ui is the Bubble Tea front end: it renders the task list and
// counters, and orchestrates the API client, store and filter from user
// events. All state lives in the Model; network results re-enter the
// update loop as messages.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/filter"
	"taskdeck/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

type Model struct {
	client Client
	cfg    config.Config
	keys   keymap

	store    *store.Store
	stats    api.Stats
	criteria filter.Criteria
	visible  []api.Task

	cursor   int
	mode     mode
	form     taskForm
	selected map[int64]bool

	pendingDelete *api.Task
	pendingBulk   []int64

	searching bool
	search    textinput.Model
	input     textinput.Model
	spinner   spinner.Model
	loading   bool
	status    string
	width     int
}

func NewModel(client Client, cfg config.Config) Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100
	search.Width = 30

	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:   client,
		cfg:      cfg,
		keys:     newKeymap(cfg.Keys),
		store:    store.New(),
		selected: make(map[int64]bool),
		search:   search,
		input:    input,
		spinner:  sp,
		loading:  true,
		status:   "Press 'a' to add, '/' to search, 'c' to complete.",
	}
}

func Run(client Client, cfg config.Config) error {
	program := tea.NewProgram(NewModel(client, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTasksCmd(), m.loadStatsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 10; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Reads recover with an empty list; only the task list
			// failure is surfaced to the user.
			m.store.Replace(nil)
			m.status = "Failed to load tasks"
		} else {
			m.store.Replace(msg.tasks)
		}
		m.pruneSelection()
		m.refreshVisible()
		return m, nil

	case statsLoadedMsg:
		m.stats = msg.stats
		return m, nil

	case mutationDoneMsg:
		m.status = msg.note
		if m.mode == modeAdd || m.mode == modeEdit {
			m.closeForm()
		}
		m.selected = make(map[int64]bool)
		return m, m.reload()

	case errMsg:
		m.loading = false
		m.status = failureText(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg.String())
	case modeAdd, modeEdit:
		return m.updateForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if len(m.visible) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.visible))
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visible))
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.form = newAddForm()
		m.seedInput()
		m.status = "New task: Enter to advance, Esc to cancel"

	case key.Matches(msg, m.keys.Edit):
		if len(m.visible) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.mode = modeEdit
		m.form = newEditForm(m.visible[m.cursor])
		m.seedInput()
		m.status = "Edit task: Enter to advance, Esc to cancel"

	case key.Matches(msg, m.keys.Complete):
		return m.startComplete()

	case key.Matches(msg, m.keys.Delete):
		return m.startDelete()

	case key.Matches(msg, m.keys.Select):
		if len(m.visible) == 0 {
			return m, nil
		}
		id := m.visible[m.cursor].ID
		if m.selected[id] {
			delete(m.selected, id)
		} else {
			m.selected[id] = true
		}
		m.status = fmt.Sprintf("%d selected", len(m.selected))

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		m.status = "Search: type to filter, Enter to leave"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.StatusFilter):
		m.criteria.Status = nextStatusFilter(m.criteria.Status)
		m.refreshVisible()

	case key.Matches(msg, m.keys.PriorityFilter):
		m.criteria.Priority = nextPriorityFilter(m.criteria.Priority)
		m.refreshVisible()

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.reload()
	}
	return m, nil
}

// startComplete re-submits the task's current fields with only status
// rewritten to completed. With an active selection it becomes a bulk
// complete instead.
func (m Model) startComplete() (tea.Model, tea.Cmd) {
	if len(m.selected) > 0 {
		ids := m.selectedIDs()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.bulkCmd(ids, api.BulkComplete, fmt.Sprintf("%d tasks completed", len(ids))))
	}
	if len(m.visible) == 0 {
		return m, nil
	}
	task, ok := m.store.Find(m.visible[m.cursor].ID)
	if !ok {
		return m, nil
	}
	draft := api.DraftOf(task)
	draft.Status = api.StatusCompleted
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.updateCmd(task.ID, draft, "Task completed"))
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	if len(m.selected) > 0 {
		m.pendingBulk = m.selectedIDs()
		m.mode = modeConfirmDelete
		m.status = fmt.Sprintf("Delete %d selected tasks? y/n", len(m.pendingBulk))
		return m, nil
	}
	if len(m.visible) == 0 {
		return m, nil
	}
	t := m.visible[m.cursor]
	m.pendingDelete = &t
	m.mode = modeConfirmDelete
	m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	return m, nil
}

func (m Model) updateConfirmDelete(keyName string) (tea.Model, tea.Cmd) {
	switch keyName {
	case "y", "Y":
		m.mode = modeList
		if m.pendingBulk != nil {
			ids := m.pendingBulk
			m.pendingBulk = nil
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.bulkCmd(ids, api.BulkDelete, fmt.Sprintf("%d tasks deleted", len(ids))))
		}
		if m.pendingDelete == nil {
			m.status = ""
			return m, nil
		}
		id := m.pendingDelete.ID
		m.pendingDelete = nil
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.deleteCmd(id))
	case "n", "N", "esc":
		// Declining performs no action and produces no notification.
		m.pendingDelete = nil
		m.pendingBulk = nil
		m.mode = modeList
		m.status = ""
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		m.status = ""
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.criteria.Query = m.search.Value()
		m.refreshVisible()
		return m, cmd
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.status = "Cancelled"
		return m, nil
	case "tab", "down":
		m.form.setCurrent(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(m.form.fields()))
		m.seedInput()
		return m, nil
	case "shift+tab", "up":
		m.form.setCurrent(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(m.form.fields()))
		m.seedInput()
		return m, nil
	case "enter":
		m.form.setCurrent(m.input.Value())
		if m.form.index < len(m.form.fields())-1 {
			m.form.index++
			m.seedInput()
			return m, nil
		}
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submitForm issues the create or update call. The form stays open
// until the server answers: a failure leaves it exactly as submitted.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.draft()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.loading = true
	if m.form.taskID != 0 {
		return m, tea.Batch(m.spinner.Tick, m.updateCmd(m.form.taskID, draft, "Task updated"))
	}
	return m, tea.Batch(m.spinner.Tick, m.createCmd(draft))
}

func (m *Model) closeForm() {
	m.form = taskForm{}
	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
}

func (m *Model) seedInput() {
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.input.Focus()
}

// reload is the full-reload step: re-fetch tasks and stats, discarding
// prior client-held copies.
func (m *Model) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadTasksCmd(), m.loadStatsCmd())
}

func (m *Model) refreshVisible() {
	m.visible = m.criteria.Apply(m.store.Current())
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

func (m *Model) pruneSelection() {
	for id := range m.selected {
		if _, ok := m.store.Find(id); !ok {
			delete(m.selected, id)
		}
	}
}

// selectedIDs returns the selection in store order.
func (m Model) selectedIDs() []int64 {
	ids := make([]int64, 0, len(m.selected))
	for _, t := range m.store.Current() {
		if m.selected[t.ID] {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func failureText(err error) string {
	var (
		createErr *api.CreateError
		updateErr *api.UpdateError
		deleteErr *api.DeleteError
		bulkErr   *api.BulkError
		fetchErr  *api.FetchError
	)
	switch {
	case errors.As(err, &createErr):
		return "Failed to create task"
	case errors.As(err, &updateErr):
		return "Failed to update task"
	case errors.As(err, &deleteErr):
		return "Failed to delete task"
	case errors.As(err, &bulkErr):
		return "Bulk update failed"
	case errors.As(err, &fetchErr):
		return "Failed to load tasks"
	}
	return err.Error()
}

func nextStatusFilter(cur string) string {
	switch cur {
	case "":
		return api.StatusPending
	case api.StatusPending:
		return api.StatusInProgress
	case api.StatusInProgress:
		return api.StatusCompleted
	default:
		return ""
	}
}

func nextPriorityFilter(cur string) string {
	switch cur {
	case "":
		return api.PriorityLow
	case api.PriorityLow:
		return api.PriorityMedium
	case api.PriorityMedium:
		return api.PriorityHigh
	default:
		return ""
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
