package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/index"
)

var (
	lookupDBPath string
	lookupKey    string
	lookupAuthor string
	lookupDOI    string
)

func init() {
	lookupCmd.Flags().StringVar(&lookupDBPath, "db", "", "Path to the index database")
	lookupCmd.Flags().StringVar(&lookupKey, "key", "", "Look up by exact citation key")
	lookupCmd.Flags().StringVar(&lookupAuthor, "author", "", "Look up by first-author prefix (case-insensitive)")
	lookupCmd.Flags().StringVar(&lookupDOI, "doi", "", "Look up by exact DOI")
	lookupCmd.MarkFlagRequired("db")
	lookupCmd.MarkFlagsMutuallyExclusive("key", "author", "doi")
	lookupCmd.MarkFlagsOneRequired("key", "author", "doi")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query a bibliography index built with \"bibsort index\"",
	Args:  cobra.NoArgs,
	RunE:  runLookup,
}

// LookupResult is the response of an index query.
type LookupResult struct {
	Count   int         `json:"count"`
	Entries []index.Row `json:"entries"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	db, err := index.Open(lookupDBPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	var rows []index.Row
	switch {
	case lookupKey != "":
		rows, err = db.ByKey(lookupKey)
	case lookupAuthor != "":
		rows, err = db.ByAuthor(lookupAuthor)
	default:
		rows, err = db.ByDOI(lookupDOI)
	}
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		for _, r := range rows {
			fmt.Printf("%s\n\n", r.Raw)
		}
		return nil
	}
	return outputJSON(LookupResult{Count: len(rows), Entries: rows})
}
