package domain

// SearchOptions configures a search call.
type SearchOptions struct {
	// Limit caps the number of returned results. Zero or negative
	// means the default cap of 50.
	Limit int
}

// DefaultResultCap is the result limit applied when SearchOptions.Limit
// is unset.
const DefaultResultCap = 50

// DefaultMinConfidence is the confidence threshold applied until a caller
// overrides it.
const DefaultMinConfidence = 0.3

// MatchResult pairs a candidate record with its match confidence.
// It is constructed once per (record, query) pair and immutable after.
type MatchResult struct {
	// Record is the matched candidate.
	Record CandidateRecord

	// Confidence is the weighted-average similarity in [0, 1].
	Confidence float64

	// Reasons explains the match, one entry per scored category, in the
	// order the categories were evaluated.
	Reasons []string
}

// SourceWarning reports a non-fatal per-source failure during a search.
// The failing source contributes no records; the search still returns
// results from the remaining sources.
type SourceWarning struct {
	// Source is the name of the failing database.
	Source string

	// Err is the underlying fetch error.
	Err error
}

// Error implements the error interface.
func (w SourceWarning) Error() string {
	return "source " + w.Source + ": " + w.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (w SourceWarning) Unwrap() error {
	return w.Err
}
