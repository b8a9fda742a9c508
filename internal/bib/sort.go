package bib

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// SortKey selects the text an entry is ordered by.
type SortKey int

const (
	// SortByKey orders entries by citation key.
	SortByKey SortKey = iota
	// SortByAuthorField orders entries by the cleaned first-author text,
	// in whatever name order the field uses.
	SortByAuthorField
	// SortByAuthorName orders entries by the first author reordered to
	// "First Last".
	SortByAuthorName
)

// SortEntries stably sorts entries in place. The sort key is computed once
// per entry and cached, then compared bytewise; author keys are lowercased
// unless caseSensitive. Citation keys were already folded at parse time.
func SortEntries(entries []Entry, by SortKey, caseSensitive bool) error {
	for i := range entries {
		e := &entries[i]
		switch by {
		case SortByKey:
			e.sortKey = e.Key
		case SortByAuthorField:
			e.sortKey = foldCase(FirstAuthor(e.Raw), caseSensitive)
		case SortByAuthorName:
			name, err := FirstAuthorName(e.Raw)
			if err != nil {
				return fmt.Errorf("entry %s: %w", e.Key, err)
			}
			e.sortKey = foldCase(name, caseSensitive)
		default:
			return fmt.Errorf("unknown sort key %d", by)
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.sortKey, b.sortKey)
	})
	return nil
}

func foldCase(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// Config collects every processing toggle for a full sort run.
type Config struct {
	CaseSensitive    bool
	AllowEmptyKeys   bool
	NoDuplicateCheck bool    // skip key and DOI duplicate detection
	SkipDOICheck     bool    // skip only the DOI pass
	AllowEmptyDOI    bool    // tolerate doi fields without a DOI token
	SortBy           SortKey // final ordering; key order is always applied first
}

// Process runs the full pipeline: parse the stream, sort by key, detect
// duplicates, then apply any author-based reordering. The input is fully
// consumed and validated before Process returns, so no output has been
// produced when it fails.
func Process(r io.Reader, cfg Config) ([]Entry, error) {
	entries, err := Parse(r, Options{
		CaseSensitive:  cfg.CaseSensitive,
		AllowEmptyKeys: cfg.AllowEmptyKeys,
	})
	if err != nil {
		return nil, err
	}
	if err := SortEntries(entries, SortByKey, cfg.CaseSensitive); err != nil {
		return nil, err
	}
	if !cfg.NoDuplicateCheck {
		report := FindDuplicates(entries, DupeOptions{
			SkipDOI:       cfg.SkipDOICheck,
			AllowEmptyDOI: cfg.AllowEmptyDOI,
		})
		if !report.OK() {
			return nil, fmt.Errorf("duplicate entries detected, nothing written:\n%w",
				errors.Join(report.Errors()...))
		}
	}
	if cfg.SortBy != SortByKey {
		if err := SortEntries(entries, cfg.SortBy, cfg.CaseSensitive); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
