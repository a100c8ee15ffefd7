package sources

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/validation"
)

// Case pages and search snippets are free text; these patterns pull the
// recurring attribute phrasings out of it.
var (
	heightRE        = regexp.MustCompile(`(?i)(\d+)\s*(?:feet|ft|')\s*(\d+)\s*(?:inches|in|")`)
	weightRE        = regexp.MustCompile(`(?i)(\d+)\s*(?:pounds|lbs|lb)`)
	ageRE           = regexp.MustCompile(`(?i)\b(?:age|aged):?\s*(\d+)(?:\s*-\s*(\d+))?`)
	sexRE           = regexp.MustCompile(`(?i)\b(female|male|unknown)\b`)
	stateCodeRE     = regexp.MustCompile(`\b([A-Z]{2})\b`)
	circumstanceREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Found|Discovered|Located):\s*([^\n]+)`),
		regexp.MustCompile(`(?i)(?:Circumstances|Details):\s*([^\n]+)`),
		regexp.MustCompile(`(?i)(?:Body was|Remains were)\s*([^\n]+)`),
	}
)

// ExtractAttributes pulls physical characteristics out of unstructured
// case text. Height and weight become exact ranges; race and sex are
// matched against the known category labels.
func ExtractAttributes(text string) domain.Attributes {
	var attrs domain.Attributes
	lower := strings.ToLower(text)

	if m := heightRE.FindStringSubmatch(text); m != nil {
		feet, _ := strconv.Atoi(m[1])
		inches, _ := strconv.Atoi(m[2])
		attrs.Height = domain.Exact(feet*12 + inches)
	}

	if m := weightRE.FindStringSubmatch(text); m != nil {
		pounds, _ := strconv.Atoi(m[1])
		attrs.Weight = domain.Exact(pounds)
	}

	if m := ageRE.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi := lo
		if m[2] != "" {
			hi, _ = strconv.Atoi(m[2])
		}
		attrs.Age = domain.NewRange(lo, hi)
	}

	for _, race := range domain.Races() {
		if strings.Contains(lower, strings.ToLower(race.String())) {
			attrs.Race = race
			break
		}
	}

	if m := sexRE.FindStringSubmatch(text); m != nil {
		if sex, ok := domain.ParseSex(m[1]); ok {
			attrs.Sex = sex
		}
	}

	return attrs
}

// ExtractStateCode returns the first token that is a real two-letter
// state code, or empty.
func ExtractStateCode(text string) string {
	for _, m := range stateCodeRE.FindAllStringSubmatch(text, -1) {
		if code, err := validation.NormalizeState(m[1]); err == nil {
			return code
		}
	}
	return ""
}

// ExtractCircumstances returns the first discovery narrative found in
// the case text, or empty.
func ExtractCircumstances(text string) string {
	for _, re := range circumstanceREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
