package bib

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	authorFieldRe = fieldAssignRe("author")
	// andRe matches the whole-word author separator, any case.
	andRe = regexp.MustCompile(`(?i)\band\b`)
)

// FirstAuthor returns the first author of the entry's author field with
// braces, quotes, and escape markers stripped. The author list is cut at
// the first whole-word "and". Entries without an author field yield "".
func FirstAuthor(raw string) string {
	return strings.TrimSpace(cleanString(firstAuthorValue(raw)))
}

// FirstAuthorText is FirstAuthor with backslash escapes left in place,
// for display contexts where TeX accents should survive.
func FirstAuthorText(raw string) string {
	return strings.TrimSpace(cleanStringKeepEscapes(firstAuthorValue(raw)))
}

// FirstAuthorName reorders the first author to "First Last" when the
// field uses the "Last, First" convention. A first author containing more
// than one comma is malformed under that convention.
func FirstAuthorName(raw string) (string, error) {
	author := FirstAuthor(raw)
	parts := strings.Split(author, ",")
	switch len(parts) {
	case 1:
		return author, nil
	case 2:
		return strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0]), nil
	default:
		return "", fmt.Errorf("ambiguous author name %q: more than one comma in the first author", author)
	}
}

// firstAuthorValue extracts the raw delimited author value truncated to
// the first author, delimiters still attached.
func firstAuthorValue(raw string) string {
	rest, ok := fieldValue(raw, authorFieldRe)
	if !ok {
		return ""
	}
	val := fieldContent(rest)
	if loc := andRe.FindStringIndex(val); loc != nil {
		val = val[:loc[0]]
	}
	return val
}

// cleanString strips unescaped braces and quotes from s. A backslash is
// dropped and the character it escapes is copied literally, never treated
// as a delimiter. This is the form used for sort keys.
func cleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if esc {
			b.WriteRune(r)
			esc = false
			continue
		}
		switch r {
		case '\\':
			esc = true
		case '{', '}', '\'', '"':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cleanStringKeepEscapes strips unescaped braces and quotes but keeps
// backslash escape sequences intact.
func cleanStringKeepEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if esc {
			b.WriteRune(r)
			esc = false
			continue
		}
		switch r {
		case '\\':
			b.WriteRune(r)
			esc = true
		case '{', '}', '\'', '"':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
