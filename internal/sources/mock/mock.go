// Package mock provides an offline case source with a small fixture
// set, used for demos and tests when the real databases are
// unreachable.
package mock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CaseSource = (*Source)(nil)

// maxResults caps how many fixture records one search returns.
const maxResults = 10

// Source is an in-memory case database.
type Source struct {
	name    string
	records []domain.CandidateRecord
}

// New creates the mock source with its built-in fixture records.
func New() *Source {
	s := &Source{name: "mock"}
	s.records = fixtureRecords(s.name)
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string { return s.name }

// IsAvailable always reports true; the fixtures are local.
func (s *Source) IsAvailable(_ context.Context) bool { return true }

// Search returns fixture records loosely matching the query's hard
// criteria. Fine-grained scoring is the matcher's job, so the filter
// here only rejects clear mismatches.
func (s *Source) Search(_ context.Context, query domain.Query) ([]domain.CandidateRecord, error) {
	matches := make([]domain.CandidateRecord, 0, len(s.records))
	for _, r := range s.records {
		if s.basicMatch(r, query) {
			matches = append(matches, r)
		}
		if len(matches) == maxResults {
			break
		}
	}
	return matches, nil
}

// GetRecord returns the fixture with the given case ID.
func (s *Source) GetRecord(_ context.Context, caseID string) (domain.CandidateRecord, error) {
	for _, r := range s.records {
		if r.CaseID == caseID {
			return r, nil
		}
	}
	return domain.CandidateRecord{}, fmt.Errorf("case %q: %w", caseID, domain.ErrNotFound)
}

// basicMatch rejects records that plainly contradict the query: wrong
// state, wrong sex or race, or a height range nowhere near the queried
// one. An empty query matches everything.
func (s *Source) basicMatch(record domain.CandidateRecord, query domain.Query) bool {
	if query.IsZero() {
		return true
	}

	if query.Location.State != "" && record.Location.State != "" {
		if !strings.EqualFold(query.Location.State, record.Location.State) {
			return false
		}
	}

	if query.Attributes.Sex != "" && record.Attributes.Sex != "" {
		if query.Attributes.Sex != record.Attributes.Sex {
			return false
		}
	}

	if query.Attributes.Race != "" && record.Attributes.Race != "" {
		if query.Attributes.Race != record.Attributes.Race {
			return false
		}
	}

	if !query.Attributes.Height.IsZero() && record.Attributes.Height.Min != nil && record.Attributes.Height.Max != nil {
		lo, hi := query.Attributes.Height.Bounds(0, 100)
		recMin := float64(*record.Attributes.Height.Min)
		recMax := float64(*record.Attributes.Height.Max)
		// Reject only when more than four inches outside the range;
		// borderline cases are left for the matcher to down-score.
		if recMin > hi+4 || recMax < lo-4 {
			return false
		}
	}

	return true
}

func fixtureRecords(source string) []domain.CandidateRecord {
	now := time.Now()
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return []domain.CandidateRecord{
		{
			CaseID:  "MOCK-001",
			Source:  source,
			CaseURL: "https://example.com/case/001",
			Attributes: domain.Attributes{
				Height:    domain.NewRange(64, 66),
				Weight:    domain.NewRange(120, 140),
				Age:       domain.NewRange(25, 35),
				Race:      domain.RaceWhite,
				Sex:       domain.SexFemale,
				HairColor: "Brown",
				EyeColor:  "Blue",
				Marks:     []string{"Small scar on left hand", "Tattoo on ankle"},
			},
			Location:      domain.Location{State: "CA", County: "Los Angeles", City: "Los Angeles"},
			DateFound:     date(2020, time.May, 15),
			Circumstances: "Found in hiking area",
			Clothing:      "Blue jeans, white t-shirt",
			LastUpdated:   now,
		},
		{
			CaseID:  "MOCK-002",
			Source:  source,
			CaseURL: "https://example.com/case/002",
			Attributes: domain.Attributes{
				Height:    domain.NewRange(68, 70),
				Weight:    domain.NewRange(160, 180),
				Age:       domain.NewRange(30, 45),
				Race:      domain.RaceBlack,
				Sex:       domain.SexMale,
				HairColor: "Black",
				EyeColor:  "Brown",
				Marks:     []string{"Tribal tattoo on arm"},
			},
			Location:      domain.Location{State: "TX", County: "Harris", City: "Houston"},
			DateFound:     date(2019, time.August, 22),
			Circumstances: "Found near highway",
			Clothing:      "Dark jeans, leather jacket",
			LastUpdated:   now,
		},
		{
			CaseID:  "MOCK-003",
			Source:  source,
			CaseURL: "https://example.com/case/003",
			Attributes: domain.Attributes{
				Height:    domain.NewRange(62, 64),
				Weight:    domain.NewRange(110, 130),
				Age:       domain.NewRange(20, 30),
				Race:      domain.RaceHispanic,
				Sex:       domain.SexFemale,
				HairColor: "Black",
				EyeColor:  "Brown",
				Marks:     []string{"Birthmark on shoulder"},
			},
			Location:      domain.Location{State: "FL", County: "Miami-Dade", City: "Miami"},
			DateFound:     date(2021, time.December, 3),
			Circumstances: "Found in park",
			Clothing:      "Red dress, sandals",
			LastUpdated:   now,
		},
		{
			CaseID:  "MOCK-004",
			Source:  source,
			CaseURL: "https://example.com/case/004",
			Attributes: domain.Attributes{
				Height:    domain.NewRange(66, 68),
				Weight:    domain.NewRange(140, 160),
				Age:       domain.NewRange(35, 50),
				Race:      domain.RaceWhite,
				Sex:       domain.SexFemale,
				HairColor: "Blonde",
				EyeColor:  "Green",
			},
			Location:      domain.Location{State: "NY", County: "Manhattan", City: "New York"},
			DateFound:     date(2018, time.March, 10),
			Circumstances: "Found in urban area",
			LastUpdated:   now,
		},
		{
			CaseID:  "MOCK-005",
			Source:  source,
			CaseURL: "https://example.com/case/005",
			Attributes: domain.Attributes{
				Height:    domain.NewRange(70, 72),
				Weight:    domain.NewRange(170, 190),
				Age:       domain.NewRange(40, 55),
				Race:      domain.RaceWhite,
				Sex:       domain.SexMale,
				HairColor: "Gray",
				EyeColor:  "Blue",
				Marks:     []string{"Surgery scar on chest"},
			},
			Location:      domain.Location{State: "WA", County: "King", City: "Seattle"},
			DateFound:     date(2022, time.January, 18),
			Circumstances: "Found in wooded area",
			LastUpdated:   now,
		},
	}
}
