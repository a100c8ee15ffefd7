package domain

// AttributeRange is a pair of optional bounds for one measurable attribute
// (height in inches, weight in pounds, age in years). A nil bound means
// unbounded on that side. Callers must supply sane ranges; when both bounds
// are present, Min <= Max is assumed, not enforced.
type AttributeRange struct {
	Min *int
	Max *int
}

// NewRange builds a range with both bounds set.
func NewRange(min, max int) AttributeRange {
	return AttributeRange{Min: &min, Max: &max}
}

// Exact builds a single-value range.
func Exact(v int) AttributeRange {
	return NewRange(v, v)
}

// IsZero returns true when neither bound is set.
func (r AttributeRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Midpoint collapses the range to a representative value: the arithmetic
// mean when both bounds are present, otherwise whichever bound is set.
// The second return is false when the range is empty.
//
// Source records often report a single measurement as min==max; both shapes
// collapse to the same midpoint.
func (r AttributeRange) Midpoint() (float64, bool) {
	switch {
	case r.Min != nil && r.Max != nil:
		return (float64(*r.Min) + float64(*r.Max)) / 2, true
	case r.Min != nil:
		return float64(*r.Min), true
	case r.Max != nil:
		return float64(*r.Max), true
	default:
		return 0, false
	}
}

// Bounds returns the range endpoints, substituting the given domain-wide
// floor and ceiling for absent bounds.
func (r AttributeRange) Bounds(floor, ceil float64) (float64, float64) {
	lo, hi := floor, ceil
	if r.Min != nil {
		lo = float64(*r.Min)
	}
	if r.Max != nil {
		hi = float64(*r.Max)
	}
	return lo, hi
}
