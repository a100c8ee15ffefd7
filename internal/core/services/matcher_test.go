package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

func heightQuery(min, max int) domain.Query {
	return domain.Query{Attributes: domain.Attributes{Height: domain.NewRange(min, max)}}
}

func heightRecord(inches int) domain.CandidateRecord {
	return domain.CandidateRecord{
		CaseID:     "case-1",
		Attributes: domain.Attributes{Height: domain.Exact(inches)},
	}
}

// TestMatcher_Score_HeightInRange tests a record inside the queried range
func TestMatcher_Score_HeightInRange(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	score, reasons := m.Score(heightRecord(66), heightQuery(64, 68))

	assert.Equal(t, 1.0, score)
	require.Len(t, reasons, 1)
	assert.Equal(t, "Height match (score: 1.00)", reasons[0])
}

// TestMatcher_Score_HeightTolerance tests linear decay outside the range
func TestMatcher_Score_HeightTolerance(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	// One inch over a 3-inch tolerance: 1 - 1/3.
	score, _ := m.Score(heightRecord(67), heightQuery(60, 66))
	assert.InDelta(t, 0.6667, score, 0.001)

	// Two inches over.
	score, _ = m.Score(heightRecord(68), heightQuery(60, 66))
	assert.InDelta(t, 0.3333, score, 0.001)
}

// TestMatcher_Score_HeightBeyondTolerance tests records too far out score nothing
func TestMatcher_Score_HeightBeyondTolerance(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	score, reasons := m.Score(heightRecord(70), heightQuery(60, 66))

	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

// TestMatcher_Score_OpenEndedRange tests floor/ceiling substitution for open bounds
func TestMatcher_Score_OpenEndedRange(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	min := 64
	query := domain.Query{Attributes: domain.Attributes{Height: domain.AttributeRange{Min: &min}}}

	// Anything at or above the minimum is a perfect match.
	score, _ := m.Score(heightRecord(80), query)
	assert.Equal(t, 1.0, score)
}

// TestMatcher_Score_RecordWithoutValue tests attribute gaps are skipped, not penalised
func TestMatcher_Score_RecordWithoutValue(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{
		Attributes: domain.Attributes{Sex: domain.SexFemale},
	}
	query := domain.Query{Attributes: domain.Attributes{
		Height: domain.NewRange(60, 66),
		Sex:    domain.SexFemale,
	}}

	// No height on the record: only sex contributes, and at full weight.
	score, reasons := m.Score(record, query)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"Exact sex match"}, reasons)
}

// TestMatcher_Score_SexExactOnly tests sex never matches partially
func TestMatcher_Score_SexExactOnly(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{Sex: domain.SexFemale}}

	score, _ := m.Score(record, domain.Query{Attributes: domain.Attributes{Sex: domain.SexFemale}})
	assert.Equal(t, 1.0, score)

	score, reasons := m.Score(record, domain.Query{Attributes: domain.Attributes{Sex: domain.SexMale}})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

// TestMatcher_Score_RaceExact tests exact race categories
func TestMatcher_Score_RaceExact(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{Race: domain.RaceHispanic}}
	query := domain.Query{Attributes: domain.Attributes{Race: domain.RaceHispanic}}

	score, reasons := m.Score(record, query)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"Exact race match"}, reasons)
}

// TestMatcher_Score_RaceDissimilar tests unrelated categories are excluded
func TestMatcher_Score_RaceDissimilar(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{Race: domain.RaceBlack}}
	query := domain.Query{Attributes: domain.Attributes{Race: domain.RaceWhite}}

	score, reasons := m.Score(record, query)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

// TestMatcher_Score_WeightedAverage tests renormalisation over matched categories
func TestMatcher_Score_WeightedAverage(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{
		Height: domain.Exact(66),
		Age:    domain.Exact(33),
	}}
	query := domain.Query{Attributes: domain.Attributes{
		Height: domain.NewRange(64, 68),
		Age:    domain.NewRange(20, 30),
	}}

	// Height 1.0 at weight 0.20, age 0.4 at weight 0.15:
	// (0.20 + 0.06) / 0.35.
	score, reasons := m.Score(record, query)
	assert.InDelta(t, 0.7429, score, 0.001)
	assert.Len(t, reasons, 2)
}

// TestMatcher_Score_EmptyQuery tests a criteria-less query matches nothing
func TestMatcher_Score_EmptyQuery(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	score, reasons := m.Score(heightRecord(66), domain.Query{})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

// TestMatcher_Score_StateCaseInsensitive tests state codes compare case-insensitively
func TestMatcher_Score_StateCaseInsensitive(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Location: domain.Location{State: "ca"}}
	query := domain.Query{Location: domain.Location{State: "CA"}}

	score, reasons := m.Score(record, query)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"Exact state match"}, reasons)
}

// TestMatcher_Score_StateFuzzy tests abbreviation-vs-name similarity
func TestMatcher_Score_StateFuzzy(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Location: domain.Location{State: "Texas"}}
	query := domain.Query{Location: domain.Location{State: "TX"}}

	// Ratio("tx", "texas") = (2+5-3)/7.
	score, reasons := m.Score(record, query)
	assert.InDelta(t, 4.0/7.0, score, 0.001)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "Similar state match")
}

// TestMatcher_Score_LocationComponents tests state/city averaging with down-weights
func TestMatcher_Score_LocationComponents(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Location: domain.Location{State: "TX", City: "Houston"}}
	query := domain.Query{Location: domain.Location{State: "TX", City: "Houston"}}

	// State 1.0 and city 1.0 * 0.5, averaged.
	score, reasons := m.Score(record, query)
	assert.InDelta(t, 0.75, score, 0.001)
	assert.Len(t, reasons, 2)
}

// TestMatcher_Score_MarksContainment tests a queried mark found inside a longer description
func TestMatcher_Score_MarksContainment(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{
		Marks: []string{"small scar on left hand", "rose tattoo"},
	}}
	query := domain.Query{Attributes: domain.Attributes{Marks: []string{"scar"}}}

	score, reasons := m.Score(record, query)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"Distinguishing marks match (score: 1.00)"}, reasons)
}

// TestMatcher_Score_MarksAveraged tests each queried mark takes its best record mark
func TestMatcher_Score_MarksAveraged(t *testing.T) {
	m := NewMatcher(DefaultScoringConfig())

	record := domain.CandidateRecord{Attributes: domain.Attributes{
		Marks: []string{"rose tattoo on ankle"},
	}}
	query := domain.Query{Attributes: domain.Attributes{
		Marks: []string{"tattoo", "pierced ears"},
	}}

	// First mark is contained (1.0), second barely resembles anything;
	// the average lands well below a lone perfect match.
	score, _ := m.Score(record, query)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

// TestMatcher_Score_ConfigOverride tests custom tolerances take effect
func TestMatcher_Score_ConfigOverride(t *testing.T) {
	cfg := DefaultScoringConfig()
	cfg.HeightTolerance = 6
	m := NewMatcher(cfg)

	// Two inches over a 6-inch tolerance: 1 - 2/6.
	score, _ := m.Score(heightRecord(68), heightQuery(60, 66))
	assert.InDelta(t, 0.6667, score, 0.001)
}
