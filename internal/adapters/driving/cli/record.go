package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doefind-cli/internal/core/domain"
)

var recordJSON bool

var recordCmd = &cobra.Command{
	Use:   "record [source] [case-id]",
	Short: "Show the full details of a single case",
	Long: `Fetch one case from a source database by its case ID and print
everything the source records about it.`,
	Args: cobra.ExactArgs(2),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().BoolVar(&recordJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	if sourceCatalog == nil {
		return errors.New("source catalog not configured")
	}

	source, err := sourceCatalog.Get(args[0])
	if err != nil {
		return err
	}

	record, err := source.GetRecord(cmd.Context(), args[1])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("case %s not found in %s: %w", args[1], source.Name(), err)
		}
		return fmt.Errorf("fetching case %s from %s: %w", args[1], source.Name(), err)
	}

	if recordJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputRecordDetail(cmd, record)
	return nil
}

func outputRecordDetail(cmd *cobra.Command, record domain.CandidateRecord) {
	cmd.Printf("Case %s (%s)\n", record.CaseID, record.Source)
	if line := describeRecord(record); line != "" {
		cmd.Printf("  Profile: %s\n", line)
	}
	if loc := describeLocation(record.Location); loc != "" {
		cmd.Printf("  Location: %s\n", loc)
	}
	if record.DateFound != nil {
		cmd.Printf("  Found: %s\n", record.DateFound.Format("2006-01-02"))
	}
	if len(record.Attributes.Marks) > 0 {
		cmd.Printf("  Marks: %s\n", strings.Join(record.Attributes.Marks, "; "))
	}
	if record.Attributes.HairColor != "" {
		cmd.Printf("  Hair: %s\n", record.Attributes.HairColor)
	}
	if record.Attributes.EyeColor != "" {
		cmd.Printf("  Eyes: %s\n", record.Attributes.EyeColor)
	}
	if record.Circumstances != "" {
		cmd.Printf("  Circumstances: %s\n", record.Circumstances)
	}
	if record.Clothing != "" {
		cmd.Printf("  Clothing: %s\n", record.Clothing)
	}
	if len(record.PersonalItems) > 0 {
		cmd.Printf("  Items: %s\n", strings.Join(record.PersonalItems, "; "))
	}
	for _, photo := range record.Photos {
		cmd.Printf("  Photo: %s\n", photo)
	}
	if record.CaseURL != "" {
		cmd.Printf("  %s\n", record.CaseURL)
	}
}
