package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in the configuration file.

Keys:
  server.url                   paste server base URL
  server.timeout_seconds       request timeout
  server.requests_per_second   client-side rate limit
  app.name                     window title prefix
  document.content_type        syntax type of new documents
  share.twitter                enable the twitter action
  share.clipboard              copy the URL after saving
  history.enabled              record visited locations`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(configPath)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	contentType := settings.Document.ContentType
	if contentType == "" {
		contentType = "(plain text)"
	}

	cmd.Println("[server]")
	cmd.Printf("  url: %s\n", settings.Server.URL)
	cmd.Printf("  timeout: %s\n", settings.Server.Timeout)
	cmd.Printf("  requests_per_second: %g\n", settings.Server.RequestsPerSecond)
	cmd.Println()
	cmd.Println("[app]")
	cmd.Printf("  name: %s\n", settings.Name)
	cmd.Println()
	cmd.Println("[document]")
	cmd.Printf("  content_type: %s\n", contentType)
	cmd.Println()
	cmd.Println("[share]")
	cmd.Printf("  twitter: %t\n", settings.Share.Twitter)
	cmd.Printf("  clipboard: %t\n", settings.Share.Clipboard)
	cmd.Println()
	cmd.Println("[history]")
	cmd.Printf("  enabled: %t\n", settings.History.Enabled)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}
