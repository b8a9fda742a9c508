package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractDOI_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.pdf")
	if err := os.WriteFile(path, []byte("plain text, no pdf header"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ExtractDOI(path); err == nil {
		t.Error("ExtractDOI() accepted a non-PDF file")
	}
}

func TestExtractDOI_MissingFile(t *testing.T) {
	if _, err := ExtractDOI(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("ExtractDOI() succeeded on a missing file")
	}
}
