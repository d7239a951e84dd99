package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines global and pane-specific bindings.
type KeyMap struct {
	Quit        key.Binding
	ToggleFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	HalfDown    key.Binding
	HalfUp      key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	NextCell    key.Binding
	PrevCell    key.Binding
	DeleteCell  key.Binding
	Rename      key.Binding
	Reload      key.Binding
	CopyDiff    key.Binding
	ToggleSync  key.Binding
	GrowSplit   key.Binding
	ShrinkSplit key.Binding
	Help        key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "move up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "move down")),
		Top:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		PageDown:    key.NewBinding(key.WithKeys("ctrl+f", "pgdown"), key.WithHelp("ctrl-f", "page down")),
		PageUp:      key.NewBinding(key.WithKeys("ctrl+b", "pgup"), key.WithHelp("ctrl-b", "page up")),
		HalfDown:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl-d", "half page down")),
		HalfUp:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl-u", "half page up")),
		ScrollDown:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl-e", "scroll down")),
		ScrollUp:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl-y", "scroll up")),
		NextCell:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next cell")),
		PrevCell:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous cell")),
		DeleteCell:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete cell")),
		Rename:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename pane")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload files")),
		CopyDiff:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy diff")),
		ToggleSync:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sync scroll")),
		GrowSplit:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "grow left pane")),
		ShrinkSplit: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shrink left pane")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}
