package bib

import "regexp"

// fieldAssignRe builds a matcher for a whole-word field name followed by
// "=", e.g. "author = ". Compiled once per field at package init.
func fieldAssignRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\s*=\s*`)
}

// fieldValue returns the text following the field assignment matched by
// re, or ok=false when the entry has no such field.
func fieldValue(raw string, re *regexp.Regexp) (rest string, ok bool) {
	loc := re.FindStringIndex(raw)
	if loc == nil {
		return "", false
	}
	return raw[loc[1]:], true
}

// delimState is the state of the field-value scanner: outside any
// delimiter, inside braces (with the depth tracked separately), or inside
// single or double quotes.
type delimState int

const (
	delimNone delimState = iota
	delimBrace
	delimSingle
	delimDouble
)

// fieldContent extracts a field's delimited value from the text starting
// right after its "=". The first unescaped "{", "'", or '"' opens the
// value; braces nest, quotes close on their unescaped twin. The returned
// slice keeps the delimiters (cleanString strips them later). A backslash
// escapes exactly the next character, so "\{" never moves the depth.
// Without any delimiter, or with one left unclosed, the input is returned
// unchanged.
func fieldContent(s string) string {
	state := delimNone
	depth := 0
	start := 0
	esc := false
	for i, r := range s {
		if esc {
			esc = false
			continue
		}
		if r == '\\' {
			esc = true
			continue
		}
		switch state {
		case delimNone:
			start = i
			switch r {
			case '{':
				state = delimBrace
				depth = 1
			case '\'':
				state = delimSingle
			case '"':
				state = delimDouble
			}
		case delimBrace:
			switch r {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				return s[start : i+1]
			}
		case delimSingle:
			if r == '\'' {
				return s[start : i+1]
			}
		case delimDouble:
			if r == '"' {
				return s[start : i+1]
			}
		}
	}
	return s
}
