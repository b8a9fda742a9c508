package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/pdf"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <pdf>",
	Short: "Extract the DOI from a PDF",
	Long: `Doi scans the leading pages of a PDF for a DOI-shaped token, for
filling in bibliography entries whose doi field is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

// DOIResult is the result of a PDF DOI scan.
type DOIResult struct {
	DOI  string `json:"doi"`
	Path string `json:"path"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	doi, err := pdf.ExtractDOI(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if doi == "" {
		exitWithError(ExitDataError, "no DOI found in %s", args[0])
	}

	if humanOutput {
		fmt.Println(doi)
		return nil
	}
	return outputJSON(DOIResult{DOI: doi, Path: args[0]})
}
