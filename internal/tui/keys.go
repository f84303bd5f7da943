package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Add     key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding

	// Due-date composition (ModeAddDue only)
	PlusDay    key.Binding
	PlusHour   key.Binding
	PlusMinute key.Binding
	PlusWeek   key.Binding
	PlusSixH   key.Binding
	PlusQuart  key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

	PlusDay:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "+1 day")),
	PlusHour:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "+1 hour")),
	PlusMinute: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "+1 minute")),
	PlusWeek:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "+7 days")),
	PlusSixH:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "+6 hours")),
	PlusQuart:  key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "+15 minutes")),
}
