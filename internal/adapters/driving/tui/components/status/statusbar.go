// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
)

// State represents the current session state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateSaving  State = "saving"
	StateLocked  State = "locked"
	StateError   State = "error"
	StateInfo    State = "info"
)

// Bar displays session status on the left and enabled actions on the right.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	path    string
	actions []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		path:   "/",
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, path and message.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateSaving:
		return s.styles.Muted.Render("Saving...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateInfo:
		return s.styles.Success.Render(s.message)
	case StateLocked:
		return s.styles.Locked.Render(s.path + " (read-only)")
	case StateReady:
	}
	return s.styles.Muted.Render(s.path)
}

// renderRight renders action and keybinding hints.
func (s *Bar) renderRight() string {
	bindings := append([]key.Binding{}, s.actions...)
	bindings = append(bindings, s.keymap.Load, s.keymap.Quit)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, s.styles.ActionKey.Render(h.Key)+" "+s.styles.ActionLabel.Render(h.Desc))
	}
	return strings.Join(hints, s.styles.Muted.Render(" | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown in error and info states.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetPath sets the document location shown when idle.
func (s *Bar) SetPath(path string) {
	s.path = path
}

// Path returns the document location.
func (s *Bar) Path() string {
	return s.path
}

// SetActions sets the enabled action bindings.
func (s *Bar) SetActions(actions []key.Binding) {
	s.actions = actions
}

// Actions returns the enabled action bindings.
func (s *Bar) Actions() []key.Binding {
	return s.actions
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops any message and returns to the idle state.
func (s *Bar) Clear(locked bool) {
	s.message = ""
	s.state = StateReady
	if locked {
		s.state = StateLocked
	}
}
