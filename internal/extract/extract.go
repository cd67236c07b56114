// Package extract turns raw document bytes into ordered per-page text.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Page is one page of extracted document text. Numbers start at 1 and
// follow the source document; formats without physical pages emit
// logical pages.
type Page struct {
	Number int
	Text   string
}

// Extractor converts raw document bytes into ordered per-page text.
type Extractor interface {
	Pages(r io.Reader, filename string) ([]Page, error)
}

// ExtractionError reports a failure to extract document text, carrying
// the offending page number when known (0 when the whole document
// failed).
type ExtractionError struct {
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("extract page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("extract document: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
