package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab, PrevTab key.Binding
	Toggle, Reset    key.Binding
	Confirm, Cancel  key.Binding
	Up, Down         key.Binding
	Left, Right      key.Binding
	Expand, Navigate key.Binding
	Filter, Details  key.Binding
	Reload           key.Binding
	Help, Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev task")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next task")),
		Expand:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Navigate: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "focus phase")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Details:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// keyHelp adapts keyMap to help.KeyMap for the active tab.
type keyHelp struct {
	k   keyMap
	tab tab
}

func (h keyHelp) ShortHelp() []key.Binding {
	switch h.tab {
	case tabChecklist:
		return []key.Binding{h.k.Toggle, h.k.Reset, h.k.NextTab, h.k.Quit}
	case tabPlan:
		return []key.Binding{h.k.Up, h.k.Down, h.k.Expand, h.k.Navigate, h.k.Filter, h.k.Details, h.k.NextTab, h.k.Quit}
	}
	return []key.Binding{h.k.NextTab, h.k.Reload, h.k.Help, h.k.Quit}
}

func (h keyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.NextTab, h.k.PrevTab, h.k.Reload},
		{h.k.Toggle, h.k.Reset, h.k.Confirm, h.k.Cancel},
		{h.k.Up, h.k.Down, h.k.Left, h.k.Right},
		{h.k.Expand, h.k.Navigate, h.k.Filter, h.k.Details},
		{h.k.Help, h.k.Quit},
	}
}
