package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"taskdeck/internal/api"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Taskdeck"))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString(m.renderForm())
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(styleHelp.Render(m.renderHelp()))

	return b.String()
}

// renderStats writes the four fixed counters; absent server values show
// as zero.
func (m Model) renderStats() string {
	slot := func(label string, n int) string {
		return styleStatLabel.Render(label) + " " + styleStatValue.Render(strconv.Itoa(n))
	}
	return strings.Join([]string{
		slot("Total", m.stats.Total),
		slot("Pending", m.stats.Pending),
		slot("Completed", m.stats.Completed),
		slot("Overdue", m.stats.Overdue),
	}, "  ")
}

func (m Model) renderFilterBar() string {
	return fmt.Sprintf("%s  %s  %s",
		m.search.View(),
		styleMuted.Render("status:"+filterLabel(m.criteria.Status)),
		styleMuted.Render("priority:"+filterLabel(m.criteria.Priority)),
	)
}

func filterLabel(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

func (m Model) renderTaskList() string {
	if len(m.visible) == 0 {
		if !m.criteria.IsZero() {
			return styleMuted.Render("No tasks match the current filters.") + "\n"
		}
		return styleMuted.Render("No tasks to show. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range m.visible {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		sel := " "
		if m.selected[t.ID] {
			sel = "*"
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, sel, priorityGlyph(t.Priority), t.Title))
		if t.Description != "" {
			b.WriteString("     " + styleMuted.Render(t.Description) + "\n")
		}

		meta := fmt.Sprintf("     %s • %s • %s", StatusText(t.Status), t.Priority, formatDue(t.DueDate))
		if t.IsOverdue {
			meta += " • " + styleDanger.Render("overdue")
		}
		b.WriteString(meta)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm() string {
	header := "New task"
	if m.form.taskID != 0 {
		header = fmt.Sprintf("Edit task #%d", m.form.taskID)
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(header))
	b.WriteString("\n\n")
	for i, name := range m.form.fields() {
		prefix := " "
		val := m.form.valueAt(i)
		if i == m.form.index {
			prefix = ">"
			val = m.input.View()
		} else if strings.TrimSpace(val) == "" {
			val = styleMuted.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("%s %-38s : %s\n", prefix, name, val))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render("Enter to advance/save, tab/shift+tab to move, Esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Edit, m.keys.Complete,
		m.keys.Delete, m.keys.Select, m.keys.Search, m.keys.StatusFilter,
		m.keys.PriorityFilter, m.keys.Refresh, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, bnd := range bindings {
		h := bnd.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// StatusText localizes a status for display. Unknown values pass
// through verbatim.
func StatusText(status string) string {
	switch status {
	case api.StatusPending:
		return "Pending"
	case api.StatusInProgress:
		return "In progress"
	case api.StatusCompleted:
		return "Completed"
	}
	return status
}

// priorityGlyph picks the flag variant: high is styled as danger, low
// as success, everything else gets the default glyph.
func priorityGlyph(priority string) string {
	switch priority {
	case api.PriorityHigh:
		return styleDanger.Render("⚑")
	case api.PriorityLow:
		return styleSuccess.Render("⚑")
	default:
		return "⚑"
	}
}

func formatDue(d *api.Date) string {
	if d == nil {
		return "No date"
	}
	return d.Format("02 Jan 2006")
}
