// Package bib implements parsing, sorting, and duplicate detection for
// brace-delimited bibliography (BibTeX-style) files.
package bib

import (
	"bufio"
	"fmt"
	"io"
)

// Entry represents one bibliography record.
type Entry struct {
	Key  string // citation key, case-folded unless parsed case sensitively
	Type string // entry type (article, book, ...), lowercased
	Raw  string // full source text including the surrounding braces

	sortKey string // cached by SortEntries
}

// WriteEntries emits each entry's raw text followed by a blank line.
// Callers that write to a pipe should check the returned error for EPIPE,
// which marks a gone reader rather than a real failure.
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\n\n", e.Raw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
