package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/fuzzy"
)

// Matcher scores candidate records against a query. Each queried
// category contributes a score in [0, 1]; the confidence is the
// weighted average over the categories that actually matched, so a
// record is never penalised for fields the query left blank.
type Matcher struct {
	cfg ScoringConfig
}

// NewMatcher creates a matcher with the given tuning. Unset config
// fields fall back to defaults.
func NewMatcher(cfg ScoringConfig) *Matcher {
	return &Matcher{cfg: cfg.normalized()}
}

// Score returns the match confidence in [0, 1] and one reason per
// matched category. Zero-score categories are dropped from both the
// average and the reasons. A record matching nothing scores 0.
func (m *Matcher) Score(record domain.CandidateRecord, query domain.Query) (float64, []string) {
	var (
		totalScore  float64
		totalWeight float64
		reasons     []string
	)

	add := func(score, weight float64, reason string) {
		if score <= 0 {
			return
		}
		totalScore += score * weight
		totalWeight += weight
		reasons = append(reasons, reason)
	}

	if !query.Attributes.Height.IsZero() {
		if s, ok := m.scoreRange(record.Attributes.Height, query.Attributes.Height,
			m.cfg.HeightFloor, m.cfg.HeightCeil, m.cfg.HeightTolerance); ok {
			add(s, m.cfg.HeightWeight, fmt.Sprintf("Height match (score: %.2f)", s))
		}
	}

	if !query.Attributes.Weight.IsZero() {
		if s, ok := m.scoreRange(record.Attributes.Weight, query.Attributes.Weight,
			m.cfg.WeightFloor, m.cfg.WeightCeil, m.cfg.WeightTolerance); ok {
			add(s, m.cfg.WeightWeight, fmt.Sprintf("Weight match (score: %.2f)", s))
		}
	}

	if query.Attributes.Race != "" && record.Attributes.Race != "" {
		if query.Attributes.Race == record.Attributes.Race {
			add(1.0, m.cfg.RaceWeight, "Exact race match")
		} else {
			r := fuzzy.Ratio(
				strings.ToLower(query.Attributes.Race.String()),
				strings.ToLower(record.Attributes.Race.String()),
			)
			if r > m.cfg.RaceRatioFloor {
				add(r, m.cfg.RaceWeight, fmt.Sprintf("Similar race match (score: %.2f)", r))
			}
		}
	}

	if query.Attributes.Sex != "" && record.Attributes.Sex != "" {
		if query.Attributes.Sex == record.Attributes.Sex {
			add(1.0, m.cfg.SexWeight, "Exact sex match")
		}
	}

	if !query.Attributes.Age.IsZero() {
		if s, ok := m.scoreRange(record.Attributes.Age, query.Attributes.Age,
			m.cfg.AgeFloor, m.cfg.AgeCeil, m.cfg.AgeTolerance); ok {
			add(s, m.cfg.AgeWeight, fmt.Sprintf("Age match (score: %.2f)", s))
		}
	}

	if len(query.Attributes.Marks) > 0 && len(record.Attributes.Marks) > 0 {
		s := m.scoreMarks(record.Attributes.Marks, query.Attributes.Marks)
		add(s, m.cfg.MarksWeight, fmt.Sprintf("Distinguishing marks match (score: %.2f)", s))
	}

	if !query.Location.IsZero() && !record.Location.IsZero() {
		s, locReasons := m.scoreLocation(record.Location, query.Location)
		if s > 0 {
			totalScore += s * m.cfg.LocationWeight
			totalWeight += m.cfg.LocationWeight
			reasons = append(reasons, locReasons...)
		}
	}

	if totalWeight == 0 {
		return 0, reasons
	}
	return totalScore / totalWeight, reasons
}

// scoreRange scores a record value against a queried range. The record
// range collapses to its midpoint; open query bounds widen to the
// floor/ceiling. Inside the range scores 1; outside it the score decays
// linearly over the tolerance. Returns false when the record carries no
// value for the attribute.
func (m *Matcher) scoreRange(record, query domain.AttributeRange, floor, ceil, tolerance float64) (float64, bool) {
	mid, ok := record.Midpoint()
	if !ok {
		return 0, false
	}

	lo, hi := query.Bounds(floor, ceil)
	if lo <= mid && mid <= hi {
		return 1.0, true
	}

	var distance float64
	if mid < lo {
		distance = lo - mid
	} else {
		distance = mid - hi
	}
	if distance <= tolerance {
		return 1.0 - distance/tolerance, true
	}
	return 0, true
}

// scoreLocation scores state, county, and city independently and
// averages whichever components cleared their thresholds. County and
// city are down-weighted relative to state, but their reasons report
// the raw similarity.
func (m *Matcher) scoreLocation(record, query domain.Location) (float64, []string) {
	var (
		scores  []float64
		reasons []string
	)

	if query.State != "" && record.State != "" {
		if strings.EqualFold(query.State, record.State) {
			scores = append(scores, 1.0)
			reasons = append(reasons, "Exact state match")
		} else {
			// Threshold is low so abbreviations like "CA" still
			// register against full state names.
			r := fuzzy.Ratio(strings.ToLower(query.State), strings.ToLower(record.State))
			if r > m.cfg.StateRatioFloor {
				scores = append(scores, r)
				reasons = append(reasons, fmt.Sprintf("Similar state match (score: %.2f)", r))
			}
		}
	}

	if query.County != "" && record.County != "" {
		r := fuzzy.Ratio(strings.ToLower(query.County), strings.ToLower(record.County))
		if r > m.cfg.CountyRatioFloor {
			scores = append(scores, r*m.cfg.CountyFactor)
			reasons = append(reasons, fmt.Sprintf("County match (score: %.2f)", r))
		}
	}

	if query.City != "" && record.City != "" {
		r := fuzzy.Ratio(strings.ToLower(query.City), strings.ToLower(record.City))
		if r > m.cfg.CityRatioFloor {
			scores = append(scores, r*m.cfg.CityFactor)
			reasons = append(reasons, fmt.Sprintf("City match (score: %.2f)", r))
		}
	}

	if len(scores) == 0 {
		return 0, nil
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), reasons
}

// scoreMarks matches each queried mark against its best-scoring record
// mark and averages the best scores, so every queried mark must find
// some echo in the record to keep the average high.
func (m *Matcher) scoreMarks(recordMarks, queryMarks []string) float64 {
	var sum float64
	for _, qm := range queryMarks {
		best := 0.0
		for _, rm := range recordMarks {
			if s := fuzzy.PartialRatio(strings.ToLower(qm), strings.ToLower(rm)); s > best {
				best = s
			}
		}
		sum += best
	}
	return sum / float64(len(queryMarks))
}
