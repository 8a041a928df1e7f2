package types

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings for both modes
type KeyMap struct {
	// input
	Submit    key.Binding
	FocusList key.Binding
	ForceQuit key.Binding

	// list
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	Delete     key.Binding
	Duplicate  key.Binding
	Open       key.Binding
	Copy       key.Binding
	FocusInput key.Binding
	Help       key.Binding
	Quit       key.Binding

	mode Mode
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search now"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "results"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all/none"),
		),
		SelectNone: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "select none"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "duplicate"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("/", "tab"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForMode returns a copy of the key map whose help describes mode
func (k KeyMap) ForMode(mode Mode) KeyMap {
	k.mode = mode
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	if k.mode == ModeSearch {
		return []key.Binding{k.Submit, k.FocusList, k.ForceQuit}
	}
	return []key.Binding{k.Toggle, k.SelectAll, k.Delete, k.Duplicate, k.FocusInput, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	if k.mode == ModeSearch {
		return [][]key.Binding{{k.Submit, k.FocusList, k.ForceQuit}}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Toggle, k.SelectAll, k.SelectNone, k.Delete, k.Duplicate},
		{k.Open, k.Copy, k.FocusInput, k.Help, k.Quit},
	}
}
