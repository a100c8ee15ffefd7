package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

func TestRecordCmd_Use(t *testing.T) {
	assert.Equal(t, "record [source] [case-id]", recordCmd.Use)
}

func TestRecordCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"record", "mock"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestRecordCmd_PrintsRecord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"record", "mock", "MOCK-001"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Case MOCK-001 (mock)")
	assert.Contains(t, buf.String(), "Location: Los Angeles, CA")
	assert.Contains(t, buf.String(), "Found: 2020-05-15")
}

func TestRecordCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { recordJSON = false }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"record", "--json", "mock", "MOCK-001"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"CaseID\": \"MOCK-001\"")
}

func TestRecordCmd_UnknownSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"record", "nosuch", "CASE-1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestRecordCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	catalog := sourceCatalog.(*mockSourceCatalog)
	source := catalog.sources[0].(*mockCaseSource)
	source.recordErr = domain.ErrNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"record", "mock", "MOCK-999"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "MOCK-999")
}
