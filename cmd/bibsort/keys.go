package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/bib"
	"github.com/bibkit/bibsort/internal/config"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List citation keys in sorted order",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeys,
}

// KeysResult lists the citation keys of a bibliography.
type KeysResult struct {
	Count int      `json:"count"`
	Keys  []string `json:"keys"`
}

func runKeys(cmd *cobra.Command, args []string) error {
	gc, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening bibliography: %v", err)
	}
	// Listing is observational, so entries without a key are tolerated.
	entries, err := bib.Parse(f, bib.Options{
		CaseSensitive:  gc.CaseSensitive,
		AllowEmptyKeys: true,
	})
	f.Close()
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	if err := bib.SortEntries(entries, bib.SortByKey, gc.CaseSensitive); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	keys := make([]string, 0, len(entries))
	for i := range entries {
		if entries[i].Key != "" {
			keys = append(keys, entries[i].Key)
		}
	}

	if humanOutput {
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	}
	return outputJSON(KeysResult{Count: len(keys), Keys: keys})
}
