// Package validation parses and normalises the free-text criteria users
// type into the CLI and TUI: imperial heights, weight and age ranges,
// state codes, and distinguishing-mark descriptions.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

var (
	heightRE = regexp.MustCompile(`^(\d+)'?\s*(\d+)?`)
	weightRE = regexp.MustCompile(`(?i)(lbs?|pounds?)`)
	marksRE  = regexp.MustCompile(`[<>"';\\]`)
)

// rangeSeparators in match order. Plain "-" wins over the word forms so
// "5'6 - 5'10" splits before "to" is even considered.
var rangeSeparators = []string{"-", "to", "through", "–", "—"}

// ParseHeight converts a height string to inches. Accepted forms:
// 5'8", 5'8, 5 8, 68, 68".
func ParseHeight(s string) (int, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	if s == "" {
		return 0, fmt.Errorf("height: %w", domain.ErrInvalidInput)
	}

	if m := heightRE.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches := 0
		if m[2] != "" {
			inches, _ = strconv.Atoi(m[2])
		}
		if feet >= 3 && feet <= 8 && inches >= 0 && inches <= 11 {
			return feet*12 + inches, nil
		}
		// Plain inches, 3 to 8 feet.
		if m[2] == "" && feet >= 36 && feet <= 96 {
			return feet, nil
		}
	}
	return 0, fmt.Errorf("height %q: %w", s, domain.ErrInvalidInput)
}

// ParseWeight converts a weight string to pounds, tolerating "lbs" and
// "pounds" suffixes. Valid weights are 50 to 500.
func ParseWeight(s string) (int, error) {
	s = strings.TrimSpace(weightRE.ReplaceAllString(strings.ToLower(s), ""))
	w, err := strconv.Atoi(s)
	if err != nil || w < 50 || w > 500 {
		return 0, fmt.Errorf("weight %q: %w", s, domain.ErrInvalidInput)
	}
	return w, nil
}

// ParseAge converts an age string to years. Valid ages are 0 to 120.
func ParseAge(s string) (int, error) {
	a, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || a < 0 || a > 120 {
		return 0, fmt.Errorf("age %q: %w", s, domain.ErrInvalidInput)
	}
	return a, nil
}

// ParseHeightRange parses inputs like "5'6\" - 5'10\"", "66-70", or a
// single height, which becomes an exact range. Empty input is a valid
// empty range.
func ParseHeightRange(s string) (domain.AttributeRange, error) {
	return parseRange(s, ParseHeight)
}

// ParseWeightRange parses inputs like "150-180" or "150 to 180 lbs".
func ParseWeightRange(s string) (domain.AttributeRange, error) {
	return parseRange(s, ParseWeight)
}

// ParseAgeRange parses inputs like "25-35" or "30".
func ParseAgeRange(s string) (domain.AttributeRange, error) {
	return parseRange(s, ParseAge)
}

func parseRange(s string, parse func(string) (int, error)) (domain.AttributeRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.AttributeRange{}, nil
	}

	for _, sep := range rangeSeparators {
		if !strings.Contains(strings.ToLower(s), sep) {
			continue
		}
		parts := strings.SplitN(strings.ToLower(s), sep, 2)
		lo, err := parse(strings.TrimSpace(parts[0]))
		if err != nil {
			return domain.AttributeRange{}, err
		}
		hi, err := parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return domain.AttributeRange{}, err
		}
		if lo > hi {
			return domain.AttributeRange{}, fmt.Errorf("range %q: min exceeds max: %w", s, domain.ErrInvalidInput)
		}
		return domain.NewRange(lo, hi), nil
	}

	v, err := parse(s)
	if err != nil {
		return domain.AttributeRange{}, err
	}
	return domain.Exact(v), nil
}

// stateCodes holds the postal codes of the 50 states plus DC.
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

var stateNames = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT", "DELAWARE": "DE",
	"FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI", "IDAHO": "ID",
	"ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA", "KANSAS": "KS",
	"KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME", "MARYLAND": "MD",
	"MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN", "MISSISSIPPI": "MS",
	"MISSOURI": "MO", "MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV",
	"NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ", "NEW MEXICO": "NM", "NEW YORK": "NY",
	"NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH", "OKLAHOMA": "OK",
	"OREGON": "OR", "PENNSYLVANIA": "PA", "RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC",
	"SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT",
	"VERMONT": "VT", "VIRGINIA": "VA", "WASHINGTON": "WA", "WEST VIRGINIA": "WV",
	"WISCONSIN": "WI", "WYOMING": "WY", "DISTRICT OF COLUMBIA": "DC",
}

// NormalizeState resolves a state code or full state name to its
// two-letter postal code.
func NormalizeState(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("state: %w", domain.ErrInvalidInput)
	}
	if stateCodes[s] {
		return s, nil
	}
	if code, ok := stateNames[s]; ok {
		return code, nil
	}
	return "", fmt.Errorf("state %q: %w", s, domain.ErrInvalidInput)
}

// SanitizeText strips characters with no place in search criteria and
// caps the length.
func SanitizeText(s string, maxLen int) string {
	s = marksRE.ReplaceAllString(s, "")
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return strings.TrimSpace(s)
}

// SanitizeMarks cleans a list of distinguishing-mark descriptions,
// dropping entries that are empty after cleanup.
func SanitizeMarks(marks []string) []string {
	cleaned := make([]string, 0, len(marks))
	for _, m := range marks {
		if m = SanitizeText(strings.TrimSpace(m), 200); m != "" {
			cleaned = append(cleaned, m)
		}
	}
	return cleaned
}

// FormatHeight renders inches as feet'inches" for display.
func FormatHeight(inches int) string {
	if inches <= 0 {
		return "Unknown"
	}
	feet := inches / 12
	rem := inches % 12
	if rem == 0 {
		return fmt.Sprintf("%d'", feet)
	}
	return fmt.Sprintf(`%d'%d"`, feet, rem)
}

// FormatConfidence renders a confidence score as a banded percentage,
// e.g. `HIGH (85%)`.
func FormatConfidence(score float64) string {
	pct := score * 100
	switch {
	case pct >= 80:
		return fmt.Sprintf("HIGH (%.0f%%)", pct)
	case pct >= 60:
		return fmt.Sprintf("MEDIUM (%.0f%%)", pct)
	case pct >= 40:
		return fmt.Sprintf("LOW (%.0f%%)", pct)
	default:
		return fmt.Sprintf("VERY LOW (%.0f%%)", pct)
	}
}
