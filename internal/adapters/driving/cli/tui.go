package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [key]",
	Short: "Launch the interactive editor",
	Long: `Launch the terminal editor. With a key, the document is loaded first.

Controls:
  ctrl+s   - Save (locks the document)
  ctrl+n   - New document
  ctrl+d   - Duplicate & edit a saved document
  ctrl+r   - Open the raw text in the browser
  ctrl+t   - Share on twitter (share.twitter = true)
  ctrl+o   - Load a document by key
  ctrl+p   - History
  f1       - Help
  ctrl+q   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd, args)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp builds the app and queues the optional initial load.
func newTUIApp(cmd *cobra.Command, args []string) (*tui.App, error) {
	ports := &tui.Ports{
		Sessions: tui.SessionFactory(sessions),
		Settings: settingsService,
		History:  historyService,
		Watch:    watchConfig,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if len(args) == 1 {
		app.Preload(args[0])
	}
	return app, nil
}
