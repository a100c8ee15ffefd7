// Package cli provides the command-line interface for doefind.
// It implements a driving adapter that translates commands and flags
// into calls on the core service ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/doefind-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root. Commands check for nil
// before use so that the package can be tested piecemeal.
var (
	searchService  driving.SearchService
	historyService driving.HistoryService
	sourceCatalog  driven.SourceCatalog
)

// defaultSources is applied to searches that name no sources.
// Populated from configuration by the composition root.
var defaultSources []string

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "doefind",
	Short: "Search public unidentified persons databases",
	Long: `Doefind searches public unidentified persons case databases and ranks
candidate cases against the physical profile you describe.

Provide whatever you know: height, weight, age, sex, race, where the
person was last seen, and any distinguishing marks. Doefind queries each
case database, scores every candidate record against your criteria, and
returns the closest matches with an explanation of why each one matched.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output showing the search pipeline")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the core services used by the commands.
func SetServices(
	search driving.SearchService,
	history driving.HistoryService,
	catalog driven.SourceCatalog,
) {
	searchService = search
	historyService = history
	sourceCatalog = catalog
}

// SetDefaultSources sets the sources searched when none are requested.
func SetDefaultSources(sources []string) {
	defaultSources = sources
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
