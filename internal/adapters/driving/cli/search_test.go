package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search", searchCmd.Use)
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "50", flag.DefValue)
}

func TestSearchCmd_RequiresCriteria(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCmd_ExecutesWithCriteria(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--sex", "female", "--state", "california"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Results: 1 matching case(s)")
	assert.Contains(t, buf.String(), "MOCK-001")
	assert.Contains(t, buf.String(), "HIGH (85%)")
	assert.Contains(t, buf.String(), "Height match (score: 1.00)")
}

func TestSearchCmd_ParsesCriteriaIntoQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"search",
		"--height", "64-68",
		"--weight", "120 to 150",
		"--age", "30",
		"--sex", "f",
		"--race", "hispanic",
		"--state", "texas",
		"--marks", "rose tattoo",
		"--source", "mock",
		"--found-after", "2019-01-01",
		"--limit", "5",
	})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	mock := searchService.(*mockSearchService)
	query := mock.lastQuery
	assert.Equal(t, domain.NewRange(64, 68), query.Attributes.Height)
	assert.Equal(t, domain.NewRange(120, 150), query.Attributes.Weight)
	assert.Equal(t, domain.Exact(30), query.Attributes.Age)
	assert.Equal(t, domain.SexFemale, query.Attributes.Sex)
	assert.Equal(t, domain.RaceHispanic, query.Attributes.Race)
	assert.Equal(t, "TX", query.Location.State)
	assert.Equal(t, []string{"rose tattoo"}, query.Attributes.Marks)
	assert.Equal(t, []string{"mock"}, query.Sources)
	require.NotNil(t, query.FoundAfter)
	assert.Equal(t, "2019-01-01", query.FoundAfter.Format("2006-01-02"))
	assert.Equal(t, 5, mock.lastOpts.Limit)
}

func TestSearchCmd_InvalidHeight(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--height", "9000"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height")
}

func TestSearchCmd_UnrecognisedRace(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--race", "martian"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognised race")
}

func TestSearchCmd_MinConfidenceFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--sex", "female", "--min-confidence", "0.7"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	mock := searchService.(*mockSearchService)
	assert.InDelta(t, 0.7, mock.minConfidence, 1e-9)
}

func TestSearchCmd_WarningsGoToStderr(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	mock := searchService.(*mockSearchService)
	mock.warnings = []domain.SourceWarning{
		{Source: "namus", Err: assert.AnError},
	}

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"search", "--sex", "female"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Warning: source namus")
	assert.NotContains(t, out.String(), "Warning:")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--sex", "female", "--json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Confidence\"")
	assert.Contains(t, buf.String(), "\"CaseID\"")
	assert.Contains(t, buf.String(), "MOCK-001")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := searchService
	searchService = nil
	defer func() {
		searchService = oldService
	}()
	defer resetSearchFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--sex", "female"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetSearchFlags()

	mock := searchService.(*mockSearchService)
	mock.err = assert.AnError

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--sex", "female"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, []domain.MatchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No matching cases found")
}

func TestOutputSearchJSON_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchJSON(rootCmd, []domain.MatchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}

func TestDescribeRecord(t *testing.T) {
	record := testMatchResult().Record

	line := describeRecord(record)

	assert.Contains(t, line, "Female")
	assert.Contains(t, line, "White")
	assert.Contains(t, line, "5'5\"")
}

func TestDescribeLocation(t *testing.T) {
	loc := domain.Location{State: "CA", City: "Los Angeles"}

	assert.Equal(t, "Los Angeles, CA", describeLocation(loc))
	assert.Equal(t, "", describeLocation(domain.Location{}))
}
