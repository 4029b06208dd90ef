// Package prompt provides the single-line key prompt for the TUI.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
)

// Prompt asks for a document key to load.
type Prompt struct {
	input  textinput.Model
	styles *styles.Styles
	width  int
}

// New creates a load prompt.
func New(s *styles.Styles) *Prompt {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "abc123 or abc123.py"
	ti.CharLimit = 256
	ti.Width = 40

	return &Prompt{
		input:  ti,
		styles: s,
		width:  40,
	}
}

// Init initialises the prompt.
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Enter emits LoadRequested with the
// trimmed value; an empty value goes back to the editor.
func (p *Prompt) Update(msg tea.Msg) (*Prompt, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		raw := strings.TrimSpace(p.input.Value())
		p.input.Reset()
		if raw == "" {
			return p, func() tea.Msg { return messages.ViewChanged{View: messages.ViewEditor} }
		}
		return p, func() tea.Msg { return messages.LoadRequested{Raw: raw} }
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt.
func (p *Prompt) View() string {
	label := p.styles.Title.Render("Load: ")
	input := p.styles.InputField.Render(p.input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Focus sets focus on the input.
func (p *Prompt) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur removes focus from the input.
func (p *Prompt) Blur() {
	p.input.Blur()
}

// Focused returns whether the input is focused.
func (p *Prompt) Focused() bool {
	return p.input.Focused()
}

// SetWidth sets the width of the prompt.
func (p *Prompt) SetWidth(width int) {
	p.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.input.Width = inputWidth
}

// Reset clears the input.
func (p *Prompt) Reset() {
	p.input.Reset()
}
