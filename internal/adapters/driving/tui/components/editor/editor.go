// Package editor provides the document text area for the TUI.
package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// Ensure Editor implements the interface.
var _ driven.Editor = (*Editor)(nil)

// navigationKeys still reach a read-only editor.
var navigationKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"pgup": true, "pgdown": true, "home": true, "end": true,
}

// Editor wraps a bubbles textarea. A locked document makes it read-only.
type Editor struct {
	textarea textarea.Model
	styles   *styles.Styles
	readOnly bool
}

// New creates an editor component.
func New(s *styles.Styles) *Editor {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type here, ctrl+s to save"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.Focus()

	return &Editor{
		textarea: ta,
		styles:   s,
	}
}

// Init initialises the editor.
func (e *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && e.readOnly && !navigationKeys[k.String()] {
		return e, nil
	}
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e *Editor) View() string {
	return e.styles.Editor.Render(e.textarea.View())
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the text and moves the cursor to the start.
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
	for e.textarea.Line() > 0 {
		e.textarea.CursorUp()
	}
	e.textarea.CursorStart()
}

// Focus gives the editor input focus.
func (e *Editor) Focus() {
	e.textarea.Focus()
}

// Blur removes focus.
func (e *Editor) Blur() {
	e.textarea.Blur()
}

// Focused reports whether the editor has focus.
func (e *Editor) Focused() bool {
	return e.textarea.Focused()
}

// Reset clears the text and leaves read-only mode.
func (e *Editor) Reset() {
	e.textarea.Reset()
	e.readOnly = false
}

// SetReadOnly ignores editing keys while set.
func (e *Editor) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
}

// ReadOnly reports whether editing keys are ignored.
func (e *Editor) ReadOnly() bool {
	return e.readOnly
}

// SetDimensions sizes the text area.
func (e *Editor) SetDimensions(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}
