// Command doefind searches public unidentified persons case databases
// and ranks candidates against a physical profile.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/doefind-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/doefind-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/doefind-cli/internal/core/services"
	"github.com/custodia-labs/doefind-cli/internal/logger"
	"github.com/custodia-labs/doefind-cli/internal/sources"
	"github.com/custodia-labs/doefind-cli/internal/sources/doenetwork"
	"github.com/custodia-labs/doefind-cli/internal/sources/fbi"
	"github.com/custodia-labs/doefind-cli/internal/sources/mock"
	"github.com/custodia-labs/doefind-cli/internal/sources/namus"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	// History is best-effort: searches still work without a writable
	// data directory.
	var historyStore driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("History disabled: %v", err)
	} else {
		historyStore = store
		defer store.Close()
	}

	catalog := sources.NewRegistry(
		mock.New(),
		namus.New(),
		doenetwork.New(),
		fbi.New(),
	)

	matcher := services.NewMatcher(services.DefaultScoringConfig())
	searchService := services.NewSearchService(catalog, matcher, historyStore)
	if threshold := configStore.GetFloat("search.min_confidence"); threshold > 0 {
		searchService.SetMinConfidence(threshold)
	}

	var historyService driving.HistoryService
	if historyStore != nil {
		historyService = services.NewHistoryService(historyStore)
	}

	cli.SetVersion(version)
	cli.SetDefaultSources(configStore.GetStringSlice("search.default_sources"))
	cli.SetServices(searchService, historyService, catalog)

	return cli.Execute()
}
