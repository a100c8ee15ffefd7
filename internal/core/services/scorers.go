package services

// ScoringConfig tunes the per-category scorers of the matcher. The zero
// value is not usable directly; construct with DefaultScoringConfig or
// rely on normalized to fill gaps.
type ScoringConfig struct {
	// Category weights for the confidence average.
	HeightWeight   float64
	WeightWeight   float64
	RaceWeight     float64
	SexWeight      float64
	AgeWeight      float64
	LocationWeight float64
	MarksWeight    float64

	// Tolerances soften range boundaries: a record this far outside the
	// queried range still scores, linearly decaying to zero.
	HeightTolerance float64 // inches
	WeightTolerance float64 // pounds
	AgeTolerance    float64 // years

	// Floors and ceilings substitute for open-ended query bounds.
	HeightFloor, HeightCeil float64
	WeightFloor, WeightCeil float64
	AgeFloor, AgeCeil       float64

	// Similarity thresholds below which a fuzzy category is discarded.
	RaceRatioFloor   float64
	StateRatioFloor  float64
	CountyRatioFloor float64
	CityRatioFloor   float64

	// Down-weighting of the finer location components relative to state.
	CountyFactor float64
	CityFactor   float64
}

// DefaultScoringConfig returns the standard scorer tuning.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		HeightWeight:   0.20,
		WeightWeight:   0.20,
		RaceWeight:     0.15,
		SexWeight:      0.15,
		AgeWeight:      0.15,
		LocationWeight: 0.10,
		MarksWeight:    0.05,

		HeightTolerance: 3,
		WeightTolerance: 20,
		AgeTolerance:    5,

		HeightFloor: 0, HeightCeil: 100,
		WeightFloor: 0, WeightCeil: 500,
		AgeFloor: 0, AgeCeil: 120,

		RaceRatioFloor:   0.5,
		StateRatioFloor:  0.3,
		CountyRatioFloor: 0.7,
		CityRatioFloor:   0.7,

		CountyFactor: 0.7,
		CityFactor:   0.5,
	}
}

// normalized returns a copy with unset fields replaced by defaults, so a
// partially populated config stays usable.
func (c ScoringConfig) normalized() ScoringConfig {
	d := DefaultScoringConfig()
	if c.HeightWeight == 0 {
		c.HeightWeight = d.HeightWeight
	}
	if c.WeightWeight == 0 {
		c.WeightWeight = d.WeightWeight
	}
	if c.RaceWeight == 0 {
		c.RaceWeight = d.RaceWeight
	}
	if c.SexWeight == 0 {
		c.SexWeight = d.SexWeight
	}
	if c.AgeWeight == 0 {
		c.AgeWeight = d.AgeWeight
	}
	if c.LocationWeight == 0 {
		c.LocationWeight = d.LocationWeight
	}
	if c.MarksWeight == 0 {
		c.MarksWeight = d.MarksWeight
	}
	if c.HeightTolerance == 0 {
		c.HeightTolerance = d.HeightTolerance
	}
	if c.WeightTolerance == 0 {
		c.WeightTolerance = d.WeightTolerance
	}
	if c.AgeTolerance == 0 {
		c.AgeTolerance = d.AgeTolerance
	}
	if c.HeightCeil == 0 {
		c.HeightCeil = d.HeightCeil
	}
	if c.WeightCeil == 0 {
		c.WeightCeil = d.WeightCeil
	}
	if c.AgeCeil == 0 {
		c.AgeCeil = d.AgeCeil
	}
	if c.RaceRatioFloor == 0 {
		c.RaceRatioFloor = d.RaceRatioFloor
	}
	if c.StateRatioFloor == 0 {
		c.StateRatioFloor = d.StateRatioFloor
	}
	if c.CountyRatioFloor == 0 {
		c.CountyRatioFloor = d.CountyRatioFloor
	}
	if c.CityRatioFloor == 0 {
		c.CityRatioFloor = d.CityRatioFloor
	}
	if c.CountyFactor == 0 {
		c.CountyFactor = d.CountyFactor
	}
	if c.CityFactor == 0 {
		c.CityFactor = d.CityFactor
	}
	return c
}
