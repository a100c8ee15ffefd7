// Package fbi covers the FBI ViCAP Jane Doe listing. The listing
// offers no programmatic search or record retrieval, so the source only
// reports availability; searches contribute nothing.
package fbi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CaseSource = (*Source)(nil)

const (
	defaultBaseURL = "https://www.fbi.gov/wanted/vicap/unidentified-persons/jane-does"

	availabilityTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Source is the FBI ViCAP Jane Doe listing.
type Source struct {
	baseURL string
	httpc   *http.Client
}

// New creates the FBI source.
func New() *Source {
	return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL creates a source against a different endpoint, used by
// tests.
func NewWithBaseURL(baseURL string) *Source {
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: availabilityTimeout},
	}
}

// Name returns the source identifier.
func (s *Source) Name() string { return "fbi" }

// IsAvailable probes the listing page.
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

// Search returns no records; the listing cannot be queried.
func (s *Source) Search(_ context.Context, _ domain.Query) ([]domain.CandidateRecord, error) {
	return []domain.CandidateRecord{}, nil
}

// GetRecord is unsupported.
func (s *Source) GetRecord(_ context.Context, caseID string) (domain.CandidateRecord, error) {
	return domain.CandidateRecord{}, fmt.Errorf("fbi case %q: %w", caseID, domain.ErrNotFound)
}
