// Package cli provides the cobra command tree for haste.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/haste-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging for every command.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "haste",
	Short: "A terminal client for hastebin-style paste servers",
	Long: `haste publishes text to a paste server and fetches it back.

Documents are editable until saved. Once saved a document is locked and
can only be duplicated into a new one. Run "haste tui" for the editor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// SetVersion sets the version reported by "haste version".
func SetVersion(v string) {
	version = v
}

// Execute runs the command tree with ctx. This is called by main.main().
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
