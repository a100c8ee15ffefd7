package fbi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

// TestSource_Search_AlwaysEmpty tests the listing contributes no records
func TestSource_Search_AlwaysEmpty(t *testing.T) {
	src := New()

	records, err := src.Search(context.Background(), domain.Query{
		Attributes: domain.Attributes{Sex: domain.SexFemale},
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestSource_GetRecord tests lookup is unsupported
func TestSource_GetRecord(t *testing.T) {
	_, err := New().GetRecord(context.Background(), "any")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSource_IsAvailable tests the reachability probe
func TestSource_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	src := NewWithBaseURL(server.URL)
	assert.True(t, src.IsAvailable(context.Background()))

	server.Close()
	assert.False(t, src.IsAvailable(context.Background()))
}
