package driving

import (
	"context"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// SearchService is the primary port for locating candidate matches
// across the registered case databases.
type SearchService interface {
	// Search runs the query against every available source (or the
	// subset named in query.Sources), scores the returned records, and
	// returns matches at or above the confidence threshold, best first.
	// Per-source failures are reported as warnings; the error return is
	// reserved for failures of the search itself.
	Search(ctx context.Context, query domain.Query, opts domain.SearchOptions) ([]domain.MatchResult, []domain.SourceWarning, error)

	// SearchSource runs the query against a single named source.
	// Returns domain.ErrUnknownSource for an unregistered name and
	// domain.ErrSourceUnavailable when the source is down.
	SearchSource(ctx context.Context, source string, query domain.Query, opts domain.SearchOptions) ([]domain.MatchResult, error)

	// AvailableSources returns the names of the sources that can
	// currently serve searches. Availability is probed per call.
	AvailableSources(ctx context.Context) []string

	// SetMinConfidence overrides the confidence threshold for
	// subsequent searches. Values are clamped to [0, 1].
	SetMinConfidence(threshold float64)

	// MinConfidence returns the active confidence threshold.
	MinConfidence() float64
}

// HistoryService exposes the stored search history.
type HistoryService interface {
	// History returns the most recent searches, newest first, up to
	// limit. A non-positive limit returns everything.
	History(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// ClearHistory removes all stored searches.
	ClearHistory(ctx context.Context) error
}
