package chunk

import (
	"fmt"
	"strings"
)

// DefaultMaxSize is the default maximum chunk length in characters. It
// matches the text limit of common speech synthesis backends.
const DefaultMaxSize = 2000

// Chunk is a size-bounded segment of document text, cut on sentence or
// word boundaries, with its source location. Chunks are immutable once
// built; ChunkIndex equals the chunk's position in the document sequence.
type Chunk struct {
	Text            string     `json:"text"`
	PageNumber      int        `json:"page_number"`
	ChunkIndex      int        `json:"chunk_index"`
	StartPosition   [2]float64 `json:"start_position"`
	IsSentenceStart bool       `json:"is_sentence_start"`
}

// New validates and constructs a Chunk. The builder assigns indices
// itself; New is for callers assembling chunks by hand.
func New(text string, pageNumber, chunkIndex int) (Chunk, error) {
	if strings.TrimSpace(text) == "" {
		return Chunk{}, fmt.Errorf("chunk text is empty")
	}
	if pageNumber < 1 {
		return Chunk{}, fmt.Errorf("page number must be positive, got %d", pageNumber)
	}
	if chunkIndex < 0 {
		return Chunk{}, fmt.Errorf("chunk index must be non-negative, got %d", chunkIndex)
	}
	return Chunk{
		Text:            text,
		PageNumber:      pageNumber,
		ChunkIndex:      chunkIndex,
		IsSentenceStart: true,
	}, nil
}
