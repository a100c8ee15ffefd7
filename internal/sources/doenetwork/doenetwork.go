// Package doenetwork searches the Doe Network volunteer database.
//
// The Doe Network has no search endpoint at all; cases are organised
// into per-state listing pages. A search fetches the relevant state
// pages, follows the case links, and pre-filters the parsed records
// against the query before the core scores them. Requests are limited
// to one per second.
package doenetwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
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
	defaultBaseURL = "https://www.doenetwork.org"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	availabilityTimeout = 10 * time.Second

	// maxStatesPerSweep bounds a stateless search; crawling every state
	// page in one call would hammer the site.
	maxStatesPerSweep = 5

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// defaultStates is the fallback sweep order when the state index page
// cannot be parsed.
var defaultStates = []string{"CA", "TX", "NY", "FL", "PA"}

var (
	stateLinkRE = regexp.MustCompile(`href="[^"]*/([A-Z]{2})\.html"`)
	caseLinkRE  = regexp.MustCompile(`href="((?:[^"]*/)?case[^"]*\.html)"`)
	caseIDRE    = regexp.MustCompile(`([^/]+)\.html$`)
	tagRE       = regexp.MustCompile(`<[^>]+>`)
)

// Source is the Doe Network case database.
type Source struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// New creates the Doe Network source.
func New() *Source {
	return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL creates a source against a different endpoint, used by
// tests.
func NewWithBaseURL(baseURL string) *Source {
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Name returns the source identifier.
func (s *Source) Name() string { return "doenetwork" }

// IsAvailable probes the Doe Network front page.
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

// Search browses the state pages matching the query. With a state in
// the query only that page is fetched; without one the sweep covers a
// handful of states.
func (s *Source) Search(ctx context.Context, query domain.Query) ([]domain.CandidateRecord, error) {
	var states []string
	if query.Location.State != "" {
		states = []string{strings.ToUpper(query.Location.State)}
	} else {
		states = s.availableStates(ctx)
		if len(states) > maxStatesPerSweep {
			states = states[:maxStatesPerSweep]
		}
	}

	var records []domain.CandidateRecord
	for _, state := range states {
		stateRecords, err := s.searchState(ctx, query, state)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("Doe Network: state %s failed: %v", state, err)
			continue
		}
		records = append(records, stateRecords...)
	}
	return records, nil
}

// GetRecord is unsupported: Doe Network case IDs do not encode the
// state their page lives under.
func (s *Source) GetRecord(_ context.Context, caseID string) (domain.CandidateRecord, error) {
	return domain.CandidateRecord{}, fmt.Errorf("doenetwork case %q: %w", caseID, domain.ErrNotFound)
}

// availableStates parses the state index page, falling back to a fixed
// list.
func (s *Source) availableStates(ctx context.Context) []string {
	body, err := s.get(ctx, s.baseURL+"/cases/")
	if err != nil {
		logger.Warn("Doe Network: state index unavailable: %v", err)
		return defaultStates
	}

	seen := make(map[string]bool)
	var states []string
	for _, m := range stateLinkRE.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			states = append(states, m[1])
		}
	}
	if len(states) == 0 {
		return defaultStates
	}
	return states
}

func (s *Source) searchState(ctx context.Context, query domain.Query, state string) ([]domain.CandidateRecord, error) {
	body, err := s.get(ctx, fmt.Sprintf("%s/cases/%s.html", s.baseURL, state))
	if err != nil {
		return nil, err
	}

	var records []domain.CandidateRecord
	for _, m := range caseLinkRE.FindAllStringSubmatch(body, -1) {
		record, err := s.fetchCase(ctx, m[1], state)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			logger.Debug("Doe Network: case %s failed: %v", m[1], err)
			continue
		}
		if matchesCriteria(record, query) {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *Source) fetchCase(ctx context.Context, href, state string) (domain.CandidateRecord, error) {
	caseURL := href
	if !strings.HasPrefix(href, "http") {
		caseURL = s.baseURL + "/" + strings.TrimLeft(href, "/")
	}

	body, err := s.get(ctx, caseURL)
	if err != nil {
		return domain.CandidateRecord{}, err
	}

	caseID := caseURL
	if m := caseIDRE.FindStringSubmatch(caseURL); m != nil {
		caseID = m[1]
	}

	text := tagRE.ReplaceAllString(body, " ")
	return domain.CandidateRecord{
		CaseID:        caseID,
		Source:        s.Name(),
		CaseURL:       caseURL,
		Attributes:    sources.ExtractAttributes(text),
		Location:      domain.Location{State: state},
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

// matchesCriteria rejects parsed records that contradict the query's
// hard attributes. Range checks only require overlap; the matcher does
// the fine scoring.
func matchesCriteria(record domain.CandidateRecord, query domain.Query) bool {
	if query.Attributes.IsZero() {
		return true
	}

	q, r := query.Attributes, record.Attributes

	if q.Height.Min != nil && r.Height.Max != nil && *r.Height.Max < *q.Height.Min {
		return false
	}
	if q.Height.Max != nil && r.Height.Min != nil && *r.Height.Min > *q.Height.Max {
		return false
	}
	if q.Weight.Min != nil && r.Weight.Max != nil && *r.Weight.Max < *q.Weight.Min {
		return false
	}
	if q.Weight.Max != nil && r.Weight.Min != nil && *r.Weight.Min > *q.Weight.Max {
		return false
	}
	if q.Race != "" && r.Race != "" && q.Race != r.Race {
		return false
	}
	if q.Sex != "" && r.Sex != "" && q.Sex != r.Sex {
		return false
	}
	return true
}
