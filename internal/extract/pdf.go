package extract

import (
	"fmt"
	"io"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files via ledongthuc/pdf.
type PDFExtractor struct{}

func (p *PDFExtractor) Pages(r io.Reader, filename string) ([]Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we stage the bytes
	// in a temp file, removed on every exit path.
	tmp, err := os.CreateTemp("", "readaloud-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}
	defer f.Close()

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single bad page fails the whole document; partial
			// documents are never returned.
			return nil, &ExtractionError{Page: i, Err: err}
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}
