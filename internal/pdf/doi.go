// Package pdf extracts DOI tokens from PDF files, for filling in
// bibliography entries whose doi field is missing.
package pdf

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/bibkit/bibsort/internal/bib"
)

// maxPages limits the scan; the DOI is almost always on the first page.
const maxPages = 3

// ExtractDOI returns the first DOI-shaped token found in the leading
// pages of the PDF at path. An empty result with a nil error means no
// DOI was found.
func ExtractDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := bib.FindDOI(text); doi != "" {
			return doi, nil
		}
	}
	return "", nil
}
