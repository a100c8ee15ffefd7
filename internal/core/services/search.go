package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/doefind-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// sourceBatch holds one source's fetch outcome before scoring.
type sourceBatch struct {
	source  string
	records []domain.CandidateRecord
	err     error
}

// SearchService runs queries across the registered case databases and
// ranks the returned records by match confidence.
type SearchService struct {
	catalog driven.SourceCatalog
	matcher *Matcher
	history driven.HistoryStore

	mu            sync.RWMutex
	minConfidence float64
}

// NewSearchService creates a new search service. The history store is
// optional (can be nil); searches are then simply not recorded.
func NewSearchService(catalog driven.SourceCatalog, matcher *Matcher, history driven.HistoryStore) *SearchService {
	return &SearchService{
		catalog:       catalog,
		matcher:       matcher,
		history:       history,
		minConfidence: domain.DefaultMinConfidence,
	}
}

// SetMinConfidence overrides the confidence threshold for subsequent
// searches. Values are clamped to [0, 1].
func (s *SearchService) SetMinConfidence(threshold float64) {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	s.mu.Lock()
	s.minConfidence = threshold
	s.mu.Unlock()
}

// MinConfidence returns the active confidence threshold.
func (s *SearchService) MinConfidence() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minConfidence
}

// Search fans the query out to the target sources in parallel, scores
// every returned record, and keeps matches at or above the confidence
// threshold, best first. A failing source yields a warning and an empty
// contribution rather than failing the whole search.
func (s *SearchService) Search(
	ctx context.Context, query domain.Query, opts domain.SearchOptions,
) ([]domain.MatchResult, []domain.SourceWarning, error) {
	logger.Section("Search Execution")

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultResultCap
	}
	logger.Debug("Limit: %d, threshold: %.2f", limit, s.MinConfidence())

	targets := s.targetSources(ctx, query.Sources)
	if len(targets) == 0 {
		logger.Warn("No available sources to search")
		return []domain.MatchResult{}, nil, nil
	}

	batches := make([]sourceBatch, len(targets))
	var wg sync.WaitGroup
	for i, src := range targets {
		wg.Add(1)
		go func(i int, src driven.CaseSource) {
			defer wg.Done()
			records, err := src.Search(ctx, query)
			batches[i] = sourceBatch{source: src.Name(), records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	var warnings []domain.SourceWarning
	var records []domain.CandidateRecord
	searched := make([]string, 0, len(targets))
	for _, b := range batches {
		searched = append(searched, b.source)
		if b.err != nil {
			logger.Warn("Source %s failed: %v", b.source, b.err)
			warnings = append(warnings, domain.SourceWarning{Source: b.source, Err: b.err})
			continue
		}
		logger.Debug("Source %s: %d records", b.source, len(b.records))
		records = append(records, b.records...)
	}

	results := s.rank(records, query, limit)
	logger.Info("Final results: %d of %d records", len(results), len(records))

	s.recordHistory(ctx, query, searched, results)

	return results, warnings, nil
}

// SearchSource runs the query against a single named source. Unlike
// Search, a fetch failure here is fatal to the call.
func (s *SearchService) SearchSource(
	ctx context.Context, source string, query domain.Query, opts domain.SearchOptions,
) ([]domain.MatchResult, error) {
	src, err := s.catalog.Get(source)
	if err != nil {
		return nil, err
	}
	if !src.IsAvailable(ctx) {
		return nil, fmt.Errorf("source %s: %w", source, domain.ErrSourceUnavailable)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultResultCap
	}

	records, err := src.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", source, err)
	}
	logger.Debug("Source %s: %d records", source, len(records))

	results := s.rank(records, query, limit)
	s.recordHistory(ctx, query, []string{source}, results)

	return results, nil
}

// AvailableSources probes every registered source and returns the names
// of those currently able to serve searches.
func (s *SearchService) AvailableSources(ctx context.Context) []string {
	names := make([]string, 0)
	for _, src := range s.catalog.All() {
		if src.IsAvailable(ctx) {
			names = append(names, src.Name())
		}
	}
	return names
}

// targetSources resolves the sources a search should hit. Requested
// names are intersected with the currently available sources; an empty
// request, or one naming nothing available, falls back to everything
// that is up.
func (s *SearchService) targetSources(ctx context.Context, requested []string) []driven.CaseSource {
	var available []driven.CaseSource
	for _, src := range s.catalog.All() {
		if src.IsAvailable(ctx) {
			available = append(available, src)
		}
	}
	if len(requested) == 0 {
		return available
	}

	want := make(map[string]bool, len(requested))
	for _, name := range requested {
		want[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var targets []driven.CaseSource
	for _, src := range available {
		if want[strings.ToLower(src.Name())] {
			targets = append(targets, src)
		}
	}
	if len(targets) == 0 {
		logger.Warn("None of the requested sources are available, searching all")
		return available
	}
	return targets
}

// rank scores every record concurrently, drops those below the
// confidence threshold, and returns the top matches in descending
// confidence. The sort is stable so equally confident records keep
// their fetch order.
func (s *SearchService) rank(records []domain.CandidateRecord, query domain.Query, limit int) []domain.MatchResult {
	threshold := s.MinConfidence()

	scored := make([]domain.MatchResult, len(records))
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		task := func(i int) func() {
			return func() {
				defer wg.Done()
				confidence, reasons := s.matcher.Score(records[i], query)
				scored[i] = domain.MatchResult{
					Record:     records[i],
					Confidence: confidence,
					Reasons:    reasons,
				}
			}
		}(i)
		if err := ants.Submit(task); err != nil {
			// Pool exhausted or released, score on the caller.
			task()
		}
	}
	wg.Wait()

	results := make([]domain.MatchResult, 0, len(scored))
	for _, r := range scored {
		if r.Confidence >= threshold {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// recordHistory stores the executed search. Failures are logged and
// otherwise ignored; history must never break a search.
func (s *SearchService) recordHistory(ctx context.Context, query domain.Query, sources []string, results []domain.MatchResult) {
	if s.history == nil {
		return
	}

	top := 0.0
	if len(results) > 0 {
		top = results[0].Confidence
	}
	entry := domain.HistoryEntry{
		ID:            uuid.NewString(),
		Criteria:      summarizeQuery(query),
		Sources:       sources,
		ResultCount:   len(results),
		TopConfidence: top,
		ExecutedAt:    time.Now().UTC(),
	}
	if err := s.history.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record search history: %v", err)
	}
}

// summarizeQuery renders the populated criteria as a compact
// "key=value" line for history display.
func summarizeQuery(q domain.Query) string {
	var parts []string

	appendRange := func(name, unit string, r domain.AttributeRange) {
		switch {
		case r.IsZero():
		case r.Min != nil && r.Max != nil:
			parts = append(parts, fmt.Sprintf("%s=%d-%d%s", name, *r.Min, *r.Max, unit))
		case r.Min != nil:
			parts = append(parts, fmt.Sprintf("%s>=%d%s", name, *r.Min, unit))
		default:
			parts = append(parts, fmt.Sprintf("%s<=%d%s", name, *r.Max, unit))
		}
	}

	appendRange("height", "in", q.Attributes.Height)
	appendRange("weight", "lb", q.Attributes.Weight)
	appendRange("age", "yr", q.Attributes.Age)
	if q.Attributes.Sex != "" {
		parts = append(parts, "sex="+q.Attributes.Sex.String())
	}
	if q.Attributes.Race != "" {
		parts = append(parts, "race="+q.Attributes.Race.String())
	}
	if q.Location.State != "" {
		parts = append(parts, "state="+q.Location.State)
	}
	if q.Location.County != "" {
		parts = append(parts, "county="+q.Location.County)
	}
	if q.Location.City != "" {
		parts = append(parts, "city="+q.Location.City)
	}
	if len(q.Attributes.Marks) > 0 {
		parts = append(parts, "marks="+strings.Join(q.Attributes.Marks, "|"))
	}
	if len(parts) == 0 {
		return "(no criteria)"
	}
	return strings.Join(parts, " ")
}
