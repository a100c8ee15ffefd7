// Package tui provides an interactive terminal user interface for doefind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
)

// Ports aggregates the service interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search executes searches and ranks candidates.
	Search driving.SearchService

	// History provides access to past searches. Optional; the history
	// view reports an error when it is missing.
	History driving.HistoryService

	// Catalog lists the registered case databases for the sources view.
	Catalog driven.SourceCatalog
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Catalog == nil {
		return ErrMissingSourceCatalog
	}
	return nil
}
