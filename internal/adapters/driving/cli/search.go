package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
	"github.com/custodia-labs/doefind-cli/internal/validation"
)

var (
	searchHeight        string
	searchWeight        string
	searchAge           string
	searchSex           string
	searchRace          string
	searchState         string
	searchCounty        string
	searchCity          string
	searchMarks         []string
	searchSources       []string
	searchFoundAfter    string
	searchFoundBefore   string
	searchLimit         int
	searchMinConfidence float64
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search case databases for matching unidentified persons",
	Long: `Search every available case database for unidentified persons matching
the given physical profile, and rank candidates by match confidence.

Height, weight and age accept single values or ranges:

  doefind search --height 5'6" --sex female --state CA
  doefind search --height "64-68" --weight "120 to 150" --age 25-35
  doefind search --marks "rose tattoo" --marks "scar on left arm"

Each result reports a confidence score and the criteria that matched.
Categories the record carries no data for are skipped rather than
counted against the match.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchHeight, "height", "", `height or range (5'6", 66, 64-68)`)
	searchCmd.Flags().StringVar(&searchWeight, "weight", "", "weight in pounds or range (140, 120-150)")
	searchCmd.Flags().StringVar(&searchAge, "age", "", "estimated age or range (30, 25-35)")
	searchCmd.Flags().StringVar(&searchSex, "sex", "", "sex (male, female, unknown)")
	searchCmd.Flags().StringVar(&searchRace, "race", "", "race/ethnicity category")
	searchCmd.Flags().StringVar(&searchState, "state", "", "US state code or name")
	searchCmd.Flags().StringVar(&searchCounty, "county", "", "county name")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "city name")
	searchCmd.Flags().StringArrayVar(&searchMarks, "marks", nil,
		"distinguishing mark, repeatable (tattoos, scars, birthmarks)")
	searchCmd.Flags().StringSliceVar(&searchSources, "source", nil,
		"source database to search, repeatable (default: all available)")
	searchCmd.Flags().StringVar(&searchFoundAfter, "found-after", "", "only cases found after this date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchFoundBefore, "found-before", "", "only cases found before this date (YYYY-MM-DD)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultResultCap, "maximum number of results")
	searchCmd.Flags().Float64Var(&searchMinConfidence, "min-confidence", domain.DefaultMinConfidence,
		"minimum confidence for a result to be shown (0-1)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query, err := buildQuery()
	if err != nil {
		return err
	}
	if query.IsZero() {
		return fmt.Errorf("%w: at least one search criterion is required", domain.ErrInvalidInput)
	}

	if cmd.Flags().Changed("min-confidence") {
		searchService.SetMinConfidence(searchMinConfidence)
	}

	results, warnings, err := searchService.Search(cmd.Context(), query,
		domain.SearchOptions{Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, w := range warnings {
		cmd.PrintErrf("Warning: %s\n", w.Error())
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

// buildQuery parses the search flags into a domain query.
func buildQuery() (domain.Query, error) {
	var query domain.Query
	var err error

	if query.Attributes.Height, err = validation.ParseHeightRange(searchHeight); err != nil {
		return domain.Query{}, fmt.Errorf("invalid height: %w", err)
	}
	if query.Attributes.Weight, err = validation.ParseWeightRange(searchWeight); err != nil {
		return domain.Query{}, fmt.Errorf("invalid weight: %w", err)
	}
	if query.Attributes.Age, err = validation.ParseAgeRange(searchAge); err != nil {
		return domain.Query{}, fmt.Errorf("invalid age: %w", err)
	}

	if searchSex != "" {
		sex, ok := domain.ParseSex(searchSex)
		if !ok {
			return domain.Query{}, fmt.Errorf("%w: unrecognised sex %q", domain.ErrInvalidInput, searchSex)
		}
		query.Attributes.Sex = sex
	}
	if searchRace != "" {
		race, ok := domain.ParseRace(searchRace)
		if !ok {
			return domain.Query{}, fmt.Errorf("%w: unrecognised race %q (known: %s)",
				domain.ErrInvalidInput, searchRace, knownRaces())
		}
		query.Attributes.Race = race
	}
	if searchState != "" {
		state, err := validation.NormalizeState(searchState)
		if err != nil {
			return domain.Query{}, err
		}
		query.Location.State = state
	}
	query.Location.County = validation.SanitizeText(searchCounty, 100)
	query.Location.City = validation.SanitizeText(searchCity, 100)
	query.Attributes.Marks = validation.SanitizeMarks(searchMarks)

	if searchFoundAfter != "" {
		t, err := time.Parse("2006-01-02", searchFoundAfter)
		if err != nil {
			return domain.Query{}, fmt.Errorf("%w: invalid found-after date %q", domain.ErrInvalidInput, searchFoundAfter)
		}
		query.FoundAfter = &t
	}
	if searchFoundBefore != "" {
		t, err := time.Parse("2006-01-02", searchFoundBefore)
		if err != nil {
			return domain.Query{}, fmt.Errorf("%w: invalid found-before date %q", domain.ErrInvalidInput, searchFoundBefore)
		}
		query.FoundBefore = &t
	}

	query.Sources = searchSources
	if len(query.Sources) == 0 {
		query.Sources = defaultSources
	}
	return query, nil
}

func knownRaces() string {
	races := domain.Races()
	names := make([]string, 0, len(races))
	for _, r := range races {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

// outputSearchJSON renders results as indented JSON.
func outputSearchJSON(cmd *cobra.Command, results []domain.MatchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputSearchTable renders results in a human-readable format.
func outputSearchTable(cmd *cobra.Command, results []domain.MatchResult) error {
	if len(results) == 0 {
		cmd.Println("No matching cases found.")
		return nil
	}

	cmd.Printf("Results: %d matching case(s)\n\n", len(results))

	for i, result := range results {
		record := result.Record
		cmd.Printf("%d. [%s] Case %s\n", i+1, record.Source, record.CaseID)
		cmd.Printf("   Confidence: %s\n", validation.FormatConfidence(result.Confidence))

		if line := describeRecord(record); line != "" {
			cmd.Printf("   %s\n", line)
		}
		if loc := describeLocation(record.Location); loc != "" {
			cmd.Printf("   Location: %s\n", loc)
		}
		if record.DateFound != nil {
			cmd.Printf("   Found: %s\n", record.DateFound.Format("2006-01-02"))
		}
		for _, reason := range result.Reasons {
			cmd.Printf("   - %s\n", reason)
		}
		if record.CaseURL != "" {
			cmd.Printf("   %s\n", record.CaseURL)
		}
		cmd.Println()
	}

	return nil
}

// describeRecord summarises a record's physical attributes on one line.
func describeRecord(record domain.CandidateRecord) string {
	var parts []string

	attrs := record.Attributes
	if sex := attrs.Sex; sex != "" {
		parts = append(parts, string(sex))
	}
	if race := attrs.Race; race != "" {
		parts = append(parts, string(race))
	}
	if mid, ok := attrs.Height.Midpoint(); ok {
		parts = append(parts, validation.FormatHeight(int(mid)))
	}
	if mid, ok := attrs.Weight.Midpoint(); ok {
		parts = append(parts, fmt.Sprintf("%d lbs", int(mid)))
	}
	if mid, ok := attrs.Age.Midpoint(); ok {
		parts = append(parts, fmt.Sprintf("~%d years old", int(mid)))
	}

	return strings.Join(parts, ", ")
}

// describeLocation renders "City, County, State" from whatever is set.
func describeLocation(loc domain.Location) string {
	var parts []string
	if loc.City != "" {
		parts = append(parts, loc.City)
	}
	if loc.County != "" {
		parts = append(parts, loc.County)
	}
	if loc.State != "" {
		parts = append(parts, loc.State)
	}
	return strings.Join(parts, ", ")
}
