// Package namus searches the NamUs unidentified-persons database.
//
// NamUs has no public API; searches go through the public search page
// and the result HTML is parsed for case links and summary text.
// Requests are rate limited to stay polite.
package namus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/doefind-cli/internal/logger"
	"github.com/custodia-labs/doefind-cli/internal/sources"
)

// Ensure Source implements the interface.
var _ driven.CaseSource = (*Source)(nil)

const (
	defaultBaseURL = "https://www.namus.gov"

	// DefaultTimeout is the HTTP request timeout for searches.
	DefaultTimeout = 30 * time.Second

	// availabilityTimeout bounds the reachability probe.
	availabilityTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var (
	caseResultRE = regexp.MustCompile(`(?s)<div[^>]+class="[^"]*(?:case-result|search-result)[^"]*"[^>]*>(.*?)</div>`)
	caseLinkRE   = regexp.MustCompile(`<a[^>]+href="([^"]+)"`)
	caseIDRE     = regexp.MustCompile(`/(\d+)/?$`)
	tagRE        = regexp.MustCompile(`<[^>]+>`)
)

// Source is the NamUs case database.
type Source struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// New creates the NamUs source.
func New() *Source {
	return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL creates a NamUs source against a different endpoint,
// used by tests.
func NewWithBaseURL(baseURL string) *Source {
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Name returns the source identifier.
func (s *Source) Name() string { return "namus" }

// IsAvailable probes the NamUs front page.
func (s *Source) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, availabilityTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Search queries the NamUs search page and parses the result listing.
// Result snippets only carry partial attributes; full details require a
// GetRecord per case.
func (s *Source) Search(ctx context.Context, query domain.Query) ([]domain.CandidateRecord, error) {
	searchURL := s.baseURL + "/UnidentifiedPersons/Search?" + buildParams(query).Encode()

	body, err := s.get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("namus search: %w", err)
	}

	return s.parseResults(body), nil
}

// GetRecord fetches one case page by its numeric case ID.
func (s *Source) GetRecord(ctx context.Context, caseID string) (domain.CandidateRecord, error) {
	caseURL := fmt.Sprintf("%s/UnidentifiedPersons/Case#/%s", s.baseURL, caseID)

	body, err := s.get(ctx, caseURL)
	if err != nil {
		return domain.CandidateRecord{}, fmt.Errorf("namus case %s: %w", caseID, err)
	}

	text := stripTags(body)
	return domain.CandidateRecord{
		CaseID:        caseID,
		Source:        s.Name(),
		CaseURL:       caseURL,
		Attributes:    sources.ExtractAttributes(text),
		Location:      domain.Location{State: sources.ExtractStateCode(text)},
		Circumstances: sources.ExtractCircumstances(text),
		LastUpdated:   time.Now(),
	}, nil
}

func (s *Source) get(ctx context.Context, rawURL string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// buildParams maps the query onto the NamUs search parameters.
func buildParams(query domain.Query) url.Values {
	params := url.Values{}

	if query.Attributes.Sex != "" {
		params.Set("sex", query.Attributes.Sex.String())
	}
	if query.Attributes.Race != "" {
		params.Set("race", query.Attributes.Race.String())
	}
	setRange := func(from, to string, r domain.AttributeRange) {
		if r.Min != nil {
			params.Set(from, fmt.Sprintf("%d", *r.Min))
		}
		if r.Max != nil {
			params.Set(to, fmt.Sprintf("%d", *r.Max))
		}
	}
	setRange("heightFrom", "heightTo", query.Attributes.Height)
	setRange("weightFrom", "weightTo", query.Attributes.Weight)
	setRange("ageFrom", "ageTo", query.Attributes.Age)

	if query.Location.State != "" {
		params.Set("state", query.Location.State)
	}
	if query.Location.County != "" {
		params.Set("county", query.Location.County)
	}
	if query.Location.City != "" {
		params.Set("city", query.Location.City)
	}

	if query.FoundAfter != nil {
		params.Set("dateFrom", query.FoundAfter.Format("01/02/2006"))
	}
	if query.FoundBefore != nil {
		params.Set("dateTo", query.FoundBefore.Format("01/02/2006"))
	}

	return params
}

// parseResults extracts one record per case-result block. Blocks
// without a case link are skipped.
func (s *Source) parseResults(html string) []domain.CandidateRecord {
	var records []domain.CandidateRecord

	for _, block := range caseResultRE.FindAllStringSubmatch(html, -1) {
		link := caseLinkRE.FindStringSubmatch(block[1])
		if link == nil {
			continue
		}
		href := link[1]

		caseID := href
		if m := caseIDRE.FindStringSubmatch(href); m != nil {
			caseID = m[1]
		}

		caseURL := href
		if !strings.HasPrefix(href, "http") {
			caseURL = s.baseURL + "/" + strings.TrimLeft(href, "/")
		}

		text := stripTags(block[1])
		records = append(records, domain.CandidateRecord{
			CaseID:      caseID,
			Source:      s.Name(),
			CaseURL:     caseURL,
			Attributes:  sources.ExtractAttributes(text),
			Location:    domain.Location{State: sources.ExtractStateCode(text)},
			LastUpdated: time.Now(),
		})
	}

	logger.Debug("NamUs: parsed %d records", len(records))
	return records
}

func stripTags(html string) string {
	return tagRE.ReplaceAllString(html, " ")
}
