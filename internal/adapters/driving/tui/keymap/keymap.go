// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// KeyMap defines the keybindings that are not session actions.
// Session actions come from the action table, see Actions.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the editor.
	Back key.Binding

	// Load opens the load prompt.
	Load key.Binding

	// History shows recorded locations.
	History key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Clear empties the history.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Load: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "load"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
	}
}

// ShortHelp returns the global keybindings.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.History, k.Help, k.Quit}
}

// HistoryHelp returns keybindings for the history view.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Load, k.History, k.Back},
		{k.Up, k.Down, k.Select, k.Clear},
		{k.Help, k.Quit},
	}
}

// Action binds one row of the action table.
type Action struct {
	Name    domain.ActionName
	Binding key.Binding
}

// Actions builds bindings from the action table. Bindings start disabled;
// call SetEnabled with the session's enabled set.
func Actions(table []driving.Action) []Action {
	out := make([]Action, len(table))
	for i, a := range table {
		b := key.NewBinding(
			key.WithKeys(a.Keys...),
			key.WithHelp(a.ShortcutDescription, a.Label),
		)
		b.SetEnabled(false)
		out[i] = Action{Name: a.Name, Binding: b}
	}
	return out
}

// SetEnabled enables exactly the named actions.
func SetEnabled(actions []Action, enabled []domain.ActionName) {
	for i := range actions {
		actions[i].Binding.SetEnabled(contains(enabled, actions[i].Name))
	}
}

// EnabledBindings returns the bindings of enabled actions in table order.
func EnabledBindings(actions []Action) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if a.Binding.Enabled() {
			out = append(out, a.Binding)
		}
	}
	return out
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

func contains(names []domain.ActionName, name domain.ActionName) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
