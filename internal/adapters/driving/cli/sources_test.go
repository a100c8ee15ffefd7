package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/doefind-cli/internal/core/ports/driven"
)

func TestSourcesCmd_Use(t *testing.T) {
	assert.Equal(t, "sources", sourcesCmd.Use)
}

func TestSourcesCmd_ListsAvailability(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Case databases:")
	assert.Contains(t, buf.String(), "mock")
	assert.Contains(t, buf.String(), "available")
	assert.Contains(t, buf.String(), "namus")
	assert.Contains(t, buf.String(), "unavailable")
}

func TestSourcesCmd_EmptyCatalog(t *testing.T) {
	oldCatalog := sourceCatalog
	sourceCatalog = &mockSourceCatalog{sources: []driven.CaseSource{}}
	defer func() {
		sourceCatalog = oldCatalog
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No sources registered")
}

func TestSourcesCmd_CatalogNotConfigured(t *testing.T) {
	oldCatalog := sourceCatalog
	sourceCatalog = nil
	defer func() {
		sourceCatalog = oldCatalog
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sources"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source catalog not configured")
}
