package bib

import (
	"bufio"
	"io"
	"strings"
)

// lineReader yields input lines with a single-slot pushback. When an
// entry's closing brace lands mid-line, the segmenter pushes the tail of
// that line back so the next call yields it before any new input.
type lineReader struct {
	sc      *bufio.Scanner
	pending string
	hasPend bool
	lineNum int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

// next returns the pushed-back fragment if one is pending, otherwise the
// next input line with any trailing \r stripped. ok is false at end of input.
func (lr *lineReader) next() (line string, ok bool) {
	if lr.hasPend {
		lr.hasPend = false
		return lr.pending, true
	}
	if !lr.sc.Scan() {
		return "", false
	}
	lr.lineNum++
	return strings.TrimSuffix(lr.sc.Text(), "\r"), true
}

func (lr *lineReader) pushBack(s string) {
	lr.pending = s
	lr.hasPend = true
}

func (lr *lineReader) err() error {
	return lr.sc.Err()
}
