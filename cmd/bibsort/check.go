package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/bib"
	"github.com/bibkit/bibsort/internal/config"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a bibliography for duplicate keys and DOIs without writing anything",
	Long: `Check parses the bibliography and runs the same duplicate detection as
a sort run, but emits a report instead of sorted entries. Every finding
is listed, so one run shows all problems at once.

The toggles from the config file (case_sensitive, allow_empty_keys,
allow_doi_duplicates, allow_empty_doi) apply.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckResult is the report of a duplicate scan.
type CheckResult struct {
	Entries       int      `json:"entries"`
	DuplicateKeys []string `json:"duplicate_keys,omitempty"`
	DuplicateDOIs []string `json:"duplicate_dois,omitempty"`
	Problems      []string `json:"problems,omitempty"`
	OK            bool     `json:"ok"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	gc, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening bibliography: %v", err)
	}
	entries, err := bib.Parse(f, bib.Options{
		CaseSensitive:  gc.CaseSensitive,
		AllowEmptyKeys: gc.AllowEmptyKeys,
	})
	f.Close()
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if err := bib.SortEntries(entries, bib.SortByKey, gc.CaseSensitive); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	report := bib.FindDuplicates(entries, bib.DupeOptions{
		SkipDOI:       gc.AllowDOIDuplicates,
		AllowEmptyDOI: gc.AllowEmptyDOI,
	})
	result := CheckResult{
		Entries:       len(entries),
		DuplicateKeys: report.Keys,
		DuplicateDOIs: report.DOIs,
		Problems:      report.BadDOIs,
		OK:            report.OK(),
	}

	if humanOutput {
		fmt.Printf("%d entries\n", result.Entries)
		for _, k := range result.DuplicateKeys {
			fmt.Printf("duplicate key: %s\n", k)
		}
		for _, d := range result.DuplicateDOIs {
			fmt.Printf("duplicate DOI: %s\n", d)
		}
		for _, p := range result.Problems {
			fmt.Println(p)
		}
		if result.OK {
			fmt.Println("no duplicates found")
		}
	} else {
		outputJSON(result)
	}

	if !result.OK {
		os.Exit(ExitDataError)
	}
	return nil
}
