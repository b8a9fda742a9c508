package main

import (
	"errors"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/bib"
	"github.com/bibkit/bibsort/internal/config"
)

var (
	caseSensitive     bool
	outPath           string
	noDupes           bool
	allowEmptyKeys    bool
	allowDOIDupes     bool
	allowEmptyDOI     bool
	sortByAuthorField bool
	sortByAuthorName  bool
)

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Sort and compare citation keys case sensitively")
	f.StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout (safe for rewriting the input in place)")
	f.BoolVarP(&noDupes, "no-duplicate-detection", "n", false, "Skip duplicate key and DOI detection")
	f.BoolVar(&allowEmptyKeys, "allow-empty-keys", false, "Accept entries without a citation key (exempt from duplicate detection)")
	f.BoolVar(&allowDOIDupes, "allow-doi-duplicates", false, "Do not treat repeated DOIs as duplicates")
	f.BoolVar(&allowEmptyDOI, "allow-empty-doi", false, "Ignore doi fields that contain no DOI, like doi = {}")
	f.BoolVar(&sortByAuthorField, "sort-by-first-author-field", false, "Sort by the first author as written in the author field")
	f.BoolVar(&sortByAuthorName, "sort-by-first-author-first-name", false, "Sort by the first author reordered to \"First Last\"")
	rootCmd.MarkFlagsMutuallyExclusive("sort-by-first-author-field", "sort-by-first-author-first-name")
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)

	f, err := os.Open(args[0])
	if err != nil {
		os.Exit(outputError(ExitError, "opening bibliography: %v", err))
	}
	entries, procErr := bib.Process(f, cfg)
	// Release the input handle before --out possibly rewrites the same path.
	f.Close()
	if procErr != nil {
		os.Exit(outputError(ExitDataError, "%v", procErr))
	}

	if outPath != "" {
		out, err := os.Create(outPath)
		if err != nil {
			os.Exit(outputError(ExitError, "creating output file: %v", err))
		}
		if err := bib.WriteEntries(out, entries); err != nil {
			out.Close()
			os.Exit(outputError(ExitError, "writing output: %v", err))
		}
		if err := out.Close(); err != nil {
			os.Exit(outputError(ExitError, "closing output file: %v", err))
		}
		return nil
	}

	if err := bib.WriteEntries(os.Stdout, entries); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(ExitSuccess) // reader went away; not an error
		}
		os.Exit(outputError(ExitError, "writing output: %v", err))
	}
	return nil
}

// resolveConfig merges the global config file with any flags the user set
// on this invocation. Flags win.
func resolveConfig(cmd *cobra.Command) bib.Config {
	gc, err := config.Load()
	if err != nil {
		os.Exit(outputError(ExitConfigError, "%v", err))
	}
	cfg := bib.Config{
		CaseSensitive:  gc.CaseSensitive,
		AllowEmptyKeys: gc.AllowEmptyKeys,
		SkipDOICheck:   gc.AllowDOIDuplicates,
		AllowEmptyDOI:  gc.AllowEmptyDOI,
		SortBy:         sortKeyFromName(gc.SortBy),
	}
	f := cmd.Flags()
	if f.Changed("case-sensitive") {
		cfg.CaseSensitive = caseSensitive
	}
	if f.Changed("allow-empty-keys") {
		cfg.AllowEmptyKeys = allowEmptyKeys
	}
	if f.Changed("allow-doi-duplicates") {
		cfg.SkipDOICheck = allowDOIDupes
	}
	if f.Changed("allow-empty-doi") {
		cfg.AllowEmptyDOI = allowEmptyDOI
	}
	if noDupes {
		cfg.NoDuplicateCheck = true
	}
	if sortByAuthorField {
		cfg.SortBy = bib.SortByAuthorField
	}
	if sortByAuthorName {
		cfg.SortBy = bib.SortByAuthorName
	}
	return cfg
}

// sortKeyFromName maps a config sort_by value to a bib.SortKey. Unknown
// values were already rejected by config validation.
func sortKeyFromName(name string) bib.SortKey {
	switch name {
	case "first-author-field":
		return bib.SortByAuthorField
	case "first-author-first-name":
		return bib.SortByAuthorName
	default:
		return bib.SortByKey
	}
}
