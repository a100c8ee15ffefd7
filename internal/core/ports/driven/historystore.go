package driven

import (
	"context"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// HistoryStore persists past searches so users can revisit what they
// already checked. Recording failures are never fatal to a search.
type HistoryStore interface {
	// Record stores one executed search.
	Record(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first, up to limit.
	// A non-positive limit returns everything.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all stored entries.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
