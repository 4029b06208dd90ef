// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

// RequestCompleted carries the outcome of a load or save back to the model.
type RequestCompleted struct {
	Completion domain.Completion
}

// ActionFailed is sent when an action could not start.
type ActionFailed struct {
	Action domain.ActionName
	Err    error
}

// LoadRequested asks the session to load a raw key ("abc" or "abc.py").
type LoadRequested struct {
	Raw string
}

// SettingsReloaded carries settings re-read after the config file changed.
type SettingsReloaded struct {
	Settings *domain.AppSettings
	Err      error
}

// HistoryLoaded carries recorded locations, newest first.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// HistoryCleared signals history was cleared.
type HistoryCleared struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the document editor.
	ViewEditor ViewType = iota
	// ViewLoad is the prompt for a key to load.
	ViewLoad
	// ViewHistory lists recorded locations.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewLoad:
		return "load"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
