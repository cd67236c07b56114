// Package pipeline assembles per-page extracted text into a
// document-level chunk sequence.
package pipeline

import (
	"io"
	"strings"

	"github.com/dgallion1/readaloud/internal/chunk"
	"github.com/dgallion1/readaloud/internal/extract"
)

// Processor drives the extraction-to-chunks pipeline for one document.
type Processor struct {
	MaxChunkSize int
}

// Process extracts pages from a document and chunks them. The returned
// sequence is empty for documents with no extractable text; extraction
// failure on any page fails the whole document.
func (p *Processor) Process(r io.Reader, filename string) ([]chunk.Chunk, error) {
	ex, err := extract.ForFile(filename)
	if err != nil {
		return nil, err
	}
	pages, err := ex.Pages(r, filename)
	if err != nil {
		return nil, err
	}
	return p.ProcessPages(pages), nil
}

// ProcessPages chunks already-extracted pages. Blank pages are skipped,
// whitespace runs are collapsed to single spaces, and a page without any
// terminal punctuation gets a synthetic period so the splitter always
// has a boundary. Chunk indices are re-assigned to be contiguous across
// the whole document, not merely within a page.
func (p *Processor) ProcessPages(pages []extract.Page) []chunk.Chunk {
	maxSize := p.MaxChunkSize
	if maxSize <= 0 {
		maxSize = chunk.DefaultMaxSize
	}

	var all []chunk.Chunk
	for _, page := range pages {
		text := normalizeWhitespace(page.Text)
		if text == "" {
			continue
		}
		if !strings.ContainsAny(text, ".!?") {
			text += "."
		}
		for _, c := range chunk.BuildChunks(chunk.SplitSentences(text), page.Number, maxSize) {
			c.ChunkIndex = len(all)
			all = append(all, c)
		}
	}
	return all
}

// normalizeWhitespace collapses runs of whitespace to single spaces and
// trims the ends.
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
