package driven

import (
	"context"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// CaseSource is a searchable database of unidentified-person cases.
// Implementations wrap one upstream provider each and normalise its
// records to domain.CandidateRecord.
type CaseSource interface {
	// Name returns the stable identifier of the source, e.g. "namus".
	Name() string

	// IsAvailable reports whether the source can currently serve
	// searches. Availability is rechecked on every search; a source
	// down one minute may be back the next.
	IsAvailable(ctx context.Context) bool

	// Search returns the candidate records matching the query's hard
	// criteria. Scoring and ranking happen in the core; sources only
	// pre-filter where the upstream supports it.
	Search(ctx context.Context, query domain.Query) ([]domain.CandidateRecord, error)

	// GetRecord fetches a single case by its source-local identifier.
	// Returns domain.ErrNotFound if the case does not exist.
	GetRecord(ctx context.Context, caseID string) (domain.CandidateRecord, error)
}

// SourceCatalog resolves case sources by name.
type SourceCatalog interface {
	// Get returns the source registered under name.
	// Returns domain.ErrUnknownSource if no such source exists.
	Get(name string) (CaseSource, error)

	// All returns every registered source in registration order.
	All() []CaseSource

	// Names returns the registered source names in registration order.
	Names() []string
}
