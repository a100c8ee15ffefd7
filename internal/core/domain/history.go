package domain

import "time"

// HistoryEntry records one executed search for later review.
type HistoryEntry struct {
	// ID uniquely identifies the entry.
	ID string

	// Criteria is a human-readable summary of the query.
	Criteria string

	// Sources lists the databases that were searched.
	Sources []string

	// ResultCount is how many matches cleared the confidence threshold.
	ResultCount int

	// TopConfidence is the confidence of the best match, 0 when there
	// were no matches.
	TopConfidence float64

	// ExecutedAt is when the search ran.
	ExecutedAt time.Time
}
