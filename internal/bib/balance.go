package bib

import "fmt"

// braceBalancer tracks brace nesting across the lines of a single entry.
// The counters start at zero per entry and are driven line by line until
// the closing brace balances the entry's opening brace.
type braceBalancer struct {
	open  int
	close int
}

// balanced reports whether the entry's braces have closed. An entry with
// no unescaped opening brace yet is not balanced, it is incomplete.
func (b *braceBalancer) balanced() bool {
	return b.open > 0 && b.open == b.close
}

// consume scans s left to right, counting braces. The moment a closing
// brace balances the count it stops and returns the consumed prefix
// (including that brace) plus the unscanned remainder, which belongs to
// the next entry. A backslash escapes the next character, so \{ and \}
// never move the counters. A close before any matching open is a
// structural error.
func (b *braceBalancer) consume(s string) (consumed, leftover string, err error) {
	esc := false
	for i, r := range s {
		if esc {
			esc = false
			continue
		}
		switch r {
		case '\\':
			esc = true
		case '{':
			b.open++
		case '}':
			b.close++
			if b.close == b.open {
				return s[:i+1], s[i+1:], nil
			}
			if b.close > b.open {
				return "", "", fmt.Errorf("brace closed before it was opened in %q", s)
			}
		}
	}
	return s, "", nil
}
