package keys

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the visualizer understands
type KeyMap struct {
	Digit       key.Binding
	Confirm     key.Binding
	ResetSearch key.Binding
	NewArray    key.Binding
	History     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// Default returns the stock bindings: digits, enter, n, r, L, ? and q
func Default() KeyMap {
	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type key"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		ResetSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "reset search"),
		),
		NewArray: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new array"),
		),
		History: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Confirm, k.ResetSearch, k.NewArray, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Confirm},
		{k.ResetSearch, k.NewArray},
		{k.History, k.Help, k.Quit},
	}
}

// Matches reports whether the key name is bound to an enabled binding.
// Key names follow bubbletea's KeyMsg.String() spelling.
func Matches(name string, bindings ...key.Binding) bool {
	for _, b := range bindings {
		if b.Enabled() && slices.Contains(b.Keys(), name) {
			return true
		}
	}
	return false
}
