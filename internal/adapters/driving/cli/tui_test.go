package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui/messages"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui [key]", tuiCmd.Use)
}

func TestNewTUIApp(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	app, err := newTUIApp(cmd, []string{"xyz"})

	require.NoError(t, err)
	assert.Equal(t, messages.ViewEditor, app.CurrentView())
	assert.Equal(t, "haste", app.State().Title)
}

func TestNewTUIApp_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	SetServices(&Services{})
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := newTUIApp(cmd, nil)

	assert.Error(t, err)
}

func TestTUICmd_TooManyArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "", "tui", "a", "b")

	assert.Error(t, err)
}
