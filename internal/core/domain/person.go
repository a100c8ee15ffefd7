package domain

import "strings"

// Sex is the recorded sex of an unidentified person.
// An empty value means "not specified" and never penalises a match.
type Sex string

// Recognised sex values.
const (
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
	SexUnknown Sex = "Unknown"
)

// IsValid returns true if the sex value is recognised.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Sex) String() string {
	return string(s)
}

// ParseSex maps free-form input to a Sex value.
// Returns false for unrecognised input.
func ParseSex(v string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "male", "m":
		return SexMale, true
	case "female", "f":
		return SexFemale, true
	case "unknown", "u":
		return SexUnknown, true
	default:
		return "", false
	}
}

// Race is the recorded race/ethnicity category.
// The category set is fixed; source databases are normalised onto it.
// An empty value means "not specified" and never penalises a match.
type Race string

// Recognised race categories.
const (
	RaceWhite           Race = "White"
	RaceBlack           Race = "Black/African American"
	RaceHispanic        Race = "Hispanic/Latino"
	RaceAsian           Race = "Asian"
	RaceNativeAmerican  Race = "Native American"
	RacePacificIslander Race = "Pacific Islander"
	RaceMultiracial     Race = "Multiracial"
	RaceUnknown         Race = "Unknown"
)

// Races lists every recognised category in display order.
func Races() []Race {
	return []Race{
		RaceWhite,
		RaceBlack,
		RaceHispanic,
		RaceAsian,
		RaceNativeAmerican,
		RacePacificIslander,
		RaceMultiracial,
		RaceUnknown,
	}
}

// IsValid returns true if the race value is recognised.
func (r Race) IsValid() bool {
	for _, known := range Races() {
		if r == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (r Race) String() string {
	return string(r)
}

// ParseRace maps free-form input to a Race category.
// Returns false for unrecognised input.
func ParseRace(v string) (Race, bool) {
	needle := strings.ToLower(strings.TrimSpace(v))
	if needle == "" {
		return "", false
	}
	for _, known := range Races() {
		if needle == strings.ToLower(string(known)) {
			return known, true
		}
	}
	// Common shorthand forms.
	switch needle {
	case "black", "african american":
		return RaceBlack, true
	case "hispanic", "latino", "latina":
		return RaceHispanic, true
	case "native", "american indian":
		return RaceNativeAmerican, true
	}
	return "", false
}

// Location identifies where a case was found, or which area a search
// targets. Fields are independent; any may be empty.
type Location struct {
	State  string
	County string
	City   string
}

// IsZero returns true when no field is set.
func (l Location) IsZero() bool {
	return l.State == "" && l.County == "" && l.City == ""
}

// Attributes is the shared physical-attribute shape used by both queries
// and candidate records. All fields are optional.
type Attributes struct {
	Height AttributeRange // inches
	Weight AttributeRange // pounds
	Age    AttributeRange // years

	Race Race
	Sex  Sex

	HairColor string
	EyeColor  string

	// Marks holds free-text distinguishing marks (tattoos, scars,
	// birthmarks). Matching against them is many-to-many fuzzy.
	Marks []string
}

// IsZero returns true when no attribute is set.
func (a Attributes) IsZero() bool {
	return a.Height.IsZero() && a.Weight.IsZero() && a.Age.IsZero() &&
		a.Race == "" && a.Sex == "" &&
		a.HairColor == "" && a.EyeColor == "" && len(a.Marks) == 0
}
