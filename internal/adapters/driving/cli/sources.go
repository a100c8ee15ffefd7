package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List case databases and their availability",
	Long: `List every known case database and whether it is currently reachable.

Unavailable sources are skipped during searches rather than failing them.`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if sourceCatalog == nil {
		return errors.New("source catalog not configured")
	}

	sources := sourceCatalog.All()
	if len(sources) == 0 {
		cmd.Println("No sources registered")
		return nil
	}

	cmd.Println("Case databases:")
	for _, source := range sources {
		status := "unavailable"
		if source.IsAvailable(cmd.Context()) {
			status = "available"
		}
		cmd.Printf("  %-12s %s\n", source.Name(), status)
	}

	return nil
}
