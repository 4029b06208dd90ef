package cli

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently visited documents",
	Long:  `List and clear the locations recorded when documents are created, saved and loaded.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded locations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded locations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

// historyLimit is a flag for the list command.
var historyLimit int

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	entries, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	settings := currentSettings()
	for _, e := range entries {
		cmd.Printf("%s  %-5s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Event,
			settings.DocumentURL(e.Path),
		)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("History cleared.")
	return nil
}
