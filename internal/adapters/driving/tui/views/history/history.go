// Package history provides the recorded-locations view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// listLimit bounds how many entries are shown.
const listLimit = 100

// View lists recorded locations, newest first.
type View struct {
	ctx      context.Context
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	service  driving.HistoryService
	entries  []domain.HistoryEntry
	selected int
	err      error
	width    int
	height   int
}

// NewView creates a history view. A nil service shows an empty list.
func NewView(ctx context.Context, s *styles.Styles, service driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &View{
		ctx:     ctx,
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		service: service,
		width:   80,
		height:  24,
	}
}

// Init loads the entries.
func (v *View) Init() tea.Cmd {
	return v.load
}

func (v *View) load() tea.Msg {
	if v.service == nil {
		return messages.HistoryLoaded{}
	}
	entries, err := v.service.List(v.ctx, listLimit)
	return messages.HistoryLoaded{Entries: entries, Err: err}
}

func (v *View) clear() tea.Msg {
	if v.service == nil {
		return messages.HistoryCleared{}
	}
	return messages.HistoryCleared{Err: v.service.Clear(v.ctx)}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoaded:
		v.entries = msg.Entries
		v.err = msg.Err
		v.selected = 0
		return v, nil

	case messages.HistoryCleared:
		v.err = msg.Err
		return v, v.load

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(msg.String(), v.keymap.Down):
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
		case keymap.Matches(msg.String(), v.keymap.Clear):
			return v, v.clear
		case keymap.Matches(msg.String(), v.keymap.Select):
			return v, v.open()
		}
	}
	return v, nil
}

// open loads the selected entry, or returns to the editor for "/".
func (v *View) open() tea.Cmd {
	if len(v.entries) == 0 {
		return nil
	}
	entry := v.entries[v.selected]
	if entry.Key == "" {
		return func() tea.Msg { return messages.ViewChanged{View: messages.ViewEditor} }
	}
	raw := strings.TrimPrefix(entry.Path, "/")
	return func() tea.Msg { return messages.LoadRequested{Raw: raw} }
}

// View renders the list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No history yet."))
		b.WriteString("\n")
	}

	rows := v.height - 6
	if rows < 1 {
		rows = 1
	}
	start := 0
	if v.selected >= rows {
		start = v.selected - rows + 1
	}
	for i := start; i < len(v.entries) && i < start+rows; i++ {
		e := v.entries[i]
		line := fmt.Sprintf("%-6s %-24s %s", e.Event, e.Path, e.CreatedAt.Local().Format("2006-01-02 15:04"))
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := make([]string, 0, len(v.keymap.HistoryHelp()))
	for _, k := range v.keymap.HistoryHelp() {
		hints = append(hints, fmt.Sprintf("[%s] %s", k.Help().Key, k.Help().Desc))
	}
	b.WriteString(v.styles.Help.Render(strings.Join(hints, "  ")))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
