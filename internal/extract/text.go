package extract

import (
	"fmt"
	"io"
	"strings"
)

// TextExtractor handles plain text files.
type TextExtractor struct{}

func (p *TextExtractor) Pages(r io.Reader, filename string) ([]Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return pagesFromText(string(data)), nil
}

// pagesFromText splits on form feeds so pre-paginated text keeps its
// page numbers; text without form feeds becomes a single page 1. Blank
// pages are kept so numbering stays aligned with the source; the
// chunking layer skips them.
func pagesFromText(text string) []Page {
	parts := strings.Split(text, "\f")
	pages := make([]Page, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, Page{Number: i + 1, Text: part})
	}
	return pages
}
