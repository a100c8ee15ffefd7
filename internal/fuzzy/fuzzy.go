// Package fuzzy provides the string-similarity ratios used by the
// matching engine. Scores are normalised edit-distance ratios in [0, 1]
// and symmetric in their arguments.
package fuzzy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	punctRE      = regexp.MustCompile(`[.,;:!?()]`)
)

// Ratio returns the Levenshtein similarity ratio between a and b:
// (len(a)+len(b)-distance) / (len(a)+len(b)), measured in runes.
// Two empty strings are identical (1); one empty string matches
// nothing (0).
func Ratio(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	total := la + lb
	if total == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(total-dist) / float64(total)
}

// PartialRatio returns the best Ratio between the shorter string and any
// equal-length window of the longer string. It models containment: a short
// descriptor scores 1 against any longer text that includes it verbatim.
func PartialRatio(a, b string) float64 {
	shorter, longer := a, b
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	if shorter == "" {
		if longer == "" {
			return 1
		}
		return 0
	}
	if strings.Contains(longer, shorter) {
		return 1
	}

	needle := []rune(shorter)
	haystack := []rune(longer)
	best := 0.0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		window := string(haystack[i : i+len(needle)])
		if r := Ratio(shorter, window); r > best {
			best = r
		}
	}
	return best
}

// Normalize prepares free text for matching: lowercase, collapsed
// whitespace, and common punctuation stripped.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
