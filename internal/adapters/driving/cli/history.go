package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously executed searches",
	Long: `Show the most recent searches, newest first, with the criteria used
and how many results each one returned.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all search history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No search history")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %s\n", entry.ExecutedAt.Local().Format("2006-01-02 15:04"), entry.Criteria)
		cmd.Printf("    %d result(s) from %s", entry.ResultCount, strings.Join(entry.Sources, ", "))
		if entry.ResultCount > 0 {
			cmd.Printf(", best %.0f%%", entry.TopConfidence*100)
		}
		cmd.Println()
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.ClearHistory(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("Search history cleared")
	return nil
}
