package bib

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var (
	// entryStartRe matches "@", the entry type, and the first opening brace.
	entryStartRe = regexp.MustCompile(`@[^{]*\{`)
	// keyRe matches a maximal run of characters that can form a citation key.
	keyRe = regexp.MustCompile(`[^,\s]+`)
)

// Options controls how a bibliography stream is parsed.
type Options struct {
	// CaseSensitive keeps citation keys as written instead of lowercasing.
	CaseSensitive bool
	// AllowEmptyKeys accepts entries without a citation key. Such entries
	// are exempt from duplicate detection.
	AllowEmptyKeys bool
}

// Parse segments a bibliography stream into entries. The whole input is
// drained before Parse returns, so a caller may close the source and then
// safely rewrite the same path. Any structural problem (text outside an
// entry, unbalanced braces, a missing key) aborts with an error and no
// entries.
func Parse(r io.Reader, opts Options) ([]Entry, error) {
	lr := newLineReader(r)
	var entries []Entry
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		if trimmed[0] != '@' {
			return nil, fmt.Errorf("line %d: text outside a bib entry (mismatched braces?): %q", lr.lineNum, line)
		}
		loc := entryStartRe.FindStringIndex(trimmed)
		if loc == nil {
			return nil, fmt.Errorf("line %d: entry start without an opening brace: %q", lr.lineNum, line)
		}
		typ := strings.ToLower(strings.TrimSpace(trimmed[loc[0]+1 : loc[1]-1]))

		// The key is whatever precedes the first comma after the brace.
		rest := trimmed[loc[1]:]
		if i := strings.IndexByte(rest, ','); i >= 0 {
			rest = rest[:i]
		}
		key := keyRe.FindString(rest)
		if key == "" && !opts.AllowEmptyKeys {
			return nil, fmt.Errorf("line %d: entry without a citation key: %q", lr.lineNum, line)
		}
		if !opts.CaseSensitive {
			key = strings.ToLower(key)
		}

		raw, err := collectEntry(lr, trimmed)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Type: typ, Raw: raw})
	}
	if err := lr.err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return entries, nil
}

// collectEntry accumulates an entry's text, newline-joined, until its
// braces balance. Text after the balancing brace is pushed back for the
// next entry.
func collectEntry(lr *lineReader, first string) (string, error) {
	var bal braceBalancer
	var raw strings.Builder

	consumed, leftover, err := bal.consume(first)
	if err != nil {
		return "", fmt.Errorf("line %d: %w", lr.lineNum, err)
	}
	raw.WriteString(consumed)
	if leftover != "" {
		lr.pushBack(leftover)
	}

	for !bal.balanced() {
		line, ok := lr.next()
		if !ok {
			return "", fmt.Errorf("unexpected end of file: unclosed brace in entry starting %q", first)
		}
		consumed, leftover, err = bal.consume(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", lr.lineNum, err)
		}
		raw.WriteByte('\n')
		raw.WriteString(consumed)
		if leftover != "" {
			lr.pushBack(leftover)
		}
	}
	return raw.String(), nil
}
