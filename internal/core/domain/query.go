package domain

import "time"

// Query bundles the search criteria for finding candidate matches.
// Every field is optional; an empty query matches as broadly as the
// underlying sources allow.
type Query struct {
	// Attributes holds the physical characteristics to match.
	Attributes Attributes

	// Location narrows the search geographically.
	Location Location

	// FoundAfter and FoundBefore bound the date the case was found.
	// They are forwarded to sources, not scored.
	FoundAfter  *time.Time
	FoundBefore *time.Time

	// Sources names the databases to search. Empty means all currently
	// available sources.
	Sources []string
}

// IsZero returns true when the query carries no criteria at all.
func (q Query) IsZero() bool {
	return q.Attributes.IsZero() && q.Location.IsZero() &&
		q.FoundAfter == nil && q.FoundBefore == nil
}
