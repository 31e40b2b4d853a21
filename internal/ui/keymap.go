package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskdeck/internal/config"
)

type keymap struct {
	Quit           key.Binding
	Up             key.Binding
	Down           key.Binding
	Add            key.Binding
	Edit           key.Binding
	Complete       key.Binding
	Delete         key.Binding
	Select         key.Binding
	Search         key.Binding
	StatusFilter   key.Binding
	PriorityFilter key.Binding
	Refresh        key.Binding
}

func newKeymap(k config.Keymap) keymap {
	bind := func(keyName, desc string, extra ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(append([]string{keyName}, extra...)...),
			key.WithHelp(helpLabel(keyName), desc),
		)
	}
	return keymap{
		Quit:           bind(k.Quit, "quit", "ctrl+c"),
		Up:             bind(k.Up, "up", "up"),
		Down:           bind(k.Down, "down", "down"),
		Add:            bind(k.Add, "add"),
		Edit:           bind(k.Edit, "edit"),
		Complete:       bind(k.Complete, "complete"),
		Delete:         bind(k.Delete, "delete"),
		Select:         bind(k.Select, "select"),
		Search:         bind(k.Search, "search"),
		StatusFilter:   bind(k.StatusFilter, "status filter"),
		PriorityFilter: bind(k.PriorityFilter, "priority filter"),
		Refresh:        bind(k.Refresh, "refresh"),
	}
}

func helpLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
