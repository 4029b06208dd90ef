package status

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, "/", bar.Path())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains string
	}{
		{"ready shows path", StateReady, "", "/abc123"},
		{"loading", StateLoading, "", "Loading..."},
		{"saving", StateSaving, "", "Saving..."},
		{"error with message", StateError, "too large", "Error: too large"},
		{"error without message", StateError, "", "Error"},
		{"info", StateInfo, "copied", "copied"},
		{"locked", StateLocked, "", "/abc123 (read-only)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetPath("/abc123")
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, bar.View(), tt.contains)
		})
	}
}

func TestStatusBar_ShowsActions(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetActions([]key.Binding{
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "Save")),
	})

	view := bar.View()

	assert.Contains(t, view, "Save")
	assert.Contains(t, view, "load")
	assert.Len(t, bar.Actions(), 1)
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear(true)
	assert.Equal(t, StateLocked, bar.State())
	assert.Empty(t, bar.Message())

	bar.Clear(false)
	assert.Equal(t, StateReady, bar.State())
}
