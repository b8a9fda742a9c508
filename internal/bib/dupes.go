package bib

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	doiFieldRe = fieldAssignRe("doi")
	// doiTokenRe matches a DOI-shaped token: "10." followed by word
	// characters and the punctuation DOIs use.
	doiTokenRe = regexp.MustCompile(`10\.[\w/\-:.()]+`)
)

// FindDOI returns the first DOI-shaped token in text, or "".
func FindDOI(text string) string {
	return doiTokenRe.FindString(text)
}

// DOI extracts the DOI token from the entry's doi field. The search stops
// at the first comma after the assignment so a token is never picked up
// from a later field. found is false when the entry has no doi field at
// all; a doi field without a recognizable token yields an error.
func (e *Entry) DOI() (doi string, found bool, err error) {
	rest, ok := fieldValue(e.Raw, doiFieldRe)
	if !ok {
		return "", false, nil
	}
	if i := strings.IndexByte(rest, ','); i >= 0 {
		rest = rest[:i]
	}
	tok := FindDOI(rest)
	if tok == "" {
		return "", true, fmt.Errorf("entry %s: doi field without a parseable DOI", e.Key)
	}
	return tok, true, nil
}

// DupeOptions controls the duplicate scan.
type DupeOptions struct {
	SkipDOI       bool // only check citation keys
	AllowEmptyDOI bool // skip doi fields that contain no DOI token
}

// DupeReport lists every duplicate finding of one validation pass, so a
// single run surfaces all problems at once.
type DupeReport struct {
	Keys    []string // one per adjacent pair of equal keys
	DOIs    []string // DOI tokens seen more than once
	BadDOIs []string // messages for doi fields without a parseable DOI
}

// OK reports whether the scan found nothing.
func (r *DupeReport) OK() bool {
	return len(r.Keys) == 0 && len(r.DOIs) == 0 && len(r.BadDOIs) == 0
}

// Errors flattens the report into one error per finding.
func (r *DupeReport) Errors() []error {
	var errs []error
	for _, k := range r.Keys {
		errs = append(errs, fmt.Errorf("duplicate key: %s", k))
	}
	for _, d := range r.DOIs {
		errs = append(errs, fmt.Errorf("duplicate DOI: %s", d))
	}
	for _, msg := range r.BadDOIs {
		errs = append(errs, fmt.Errorf("%s", msg))
	}
	return errs
}

// FindDuplicates scans entries for repeated citation keys and DOIs.
// Entries must already be sorted by key, since the key pass compares
// adjacent pairs. Entries with an empty key are exempt from both passes.
func FindDuplicates(entries []Entry, opts DupeOptions) *DupeReport {
	report := &DupeReport{}
	for i := 1; i < len(entries); i++ {
		if entries[i].Key != "" && entries[i].Key == entries[i-1].Key {
			report.Keys = append(report.Keys, entries[i].Key)
		}
	}
	if opts.SkipDOI {
		return report
	}
	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Key == "" {
			continue
		}
		doi, found, err := e.DOI()
		if err != nil {
			if !opts.AllowEmptyDOI {
				report.BadDOIs = append(report.BadDOIs, err.Error())
			}
			continue
		}
		if !found {
			continue
		}
		if _, dup := seen[doi]; dup {
			report.DOIs = append(report.DOIs, doi)
			continue
		}
		seen[doi] = struct{}{}
	}
	return report
}
