package cli

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

// Shared mocks for the command tests.

type mockSearchService struct {
	results       []domain.MatchResult
	warnings      []domain.SourceWarning
	err           error
	minConfidence float64
	lastQuery     domain.Query
	lastOpts      domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, query domain.Query, opts domain.SearchOptions,
) ([]domain.MatchResult, []domain.SourceWarning, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.results, m.warnings, nil
}

func (m *mockSearchService) SearchSource(
	_ context.Context, _ string, _ domain.Query, _ domain.SearchOptions,
) ([]domain.MatchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) AvailableSources(_ context.Context) []string {
	return []string{"mock"}
}

func (m *mockSearchService) SetMinConfidence(threshold float64) {
	m.minConfidence = threshold
}

func (m *mockSearchService) MinConfidence() float64 {
	return m.minConfidence
}

type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
	cleared bool
}

func (m *mockHistoryService) History(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) ClearHistory(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	return nil
}

type mockCaseSource struct {
	name      string
	available bool
	record    domain.CandidateRecord
	recordErr error
}

func (m *mockCaseSource) Name() string                        { return m.name }
func (m *mockCaseSource) IsAvailable(_ context.Context) bool  { return m.available }
func (m *mockCaseSource) Search(_ context.Context, _ domain.Query) ([]domain.CandidateRecord, error) {
	return nil, nil
}

func (m *mockCaseSource) GetRecord(_ context.Context, _ string) (domain.CandidateRecord, error) {
	if m.recordErr != nil {
		return domain.CandidateRecord{}, m.recordErr
	}
	return m.record, nil
}

type mockSourceCatalog struct {
	sources []driven.CaseSource
}

func (m *mockSourceCatalog) Get(name string) (driven.CaseSource, error) {
	for _, s := range m.sources {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.New("unknown source \"" + name + "\": " + domain.ErrUnknownSource.Error())
}

func (m *mockSourceCatalog) All() []driven.CaseSource { return m.sources }

func (m *mockSourceCatalog) Names() []string {
	names := make([]string, 0, len(m.sources))
	for _, s := range m.sources {
		names = append(names, s.Name())
	}
	return names
}

func testMatchResult() domain.MatchResult {
	found := time.Date(2020, time.May, 15, 0, 0, 0, 0, time.UTC)
	return domain.MatchResult{
		Record: domain.CandidateRecord{
			CaseID: "MOCK-001",
			Source: "mock",
			Attributes: domain.Attributes{
				Height: domain.NewRange(64, 66),
				Sex:    domain.SexFemale,
				Race:   domain.RaceWhite,
			},
			Location:  domain.Location{State: "CA", City: "Los Angeles"},
			DateFound: &found,
		},
		Confidence: 0.85,
		Reasons:    []string{"Height match (score: 1.00)", "Exact sex match"},
	}
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldSearch := searchService
	oldHistory := historyService
	oldCatalog := sourceCatalog

	searchService = &mockSearchService{
		results:       []domain.MatchResult{testMatchResult()},
		minConfidence: domain.DefaultMinConfidence,
	}
	historyService = &mockHistoryService{
		entries: []domain.HistoryEntry{
			{
				ID:            "entry-1",
				Criteria:      "sex=Female state=CA",
				Sources:       []string{"mock"},
				ResultCount:   1,
				TopConfidence: 0.85,
				ExecutedAt:    time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	sourceCatalog = &mockSourceCatalog{
		sources: []driven.CaseSource{
			&mockCaseSource{name: "mock", available: true, record: testMatchResult().Record},
			&mockCaseSource{name: "namus", available: false},
		},
	}

	return func() {
		searchService = oldSearch
		historyService = oldHistory
		sourceCatalog = oldCatalog
	}
}

// resetSearchFlags restores the search flag variables to their defaults.
func resetSearchFlags() {
	searchHeight = ""
	searchWeight = ""
	searchAge = ""
	searchSex = ""
	searchRace = ""
	searchState = ""
	searchCounty = ""
	searchCity = ""
	searchMarks = nil
	searchSources = nil
	searchFoundAfter = ""
	searchFoundBefore = ""
	searchLimit = domain.DefaultResultCap
	searchMinConfidence = domain.DefaultMinConfidence
	searchJSON = false
}
