package chunk

import "strings"

// BuildChunks packs sentences into chunks of at most maxSize characters,
// joined by single spaces. Greedy fill: a sentence that would overflow a
// non-empty accumulator flushes it first. A single sentence longer than
// maxSize is re-split at word boundaries with the same greedy rule; a
// single word longer than maxSize is emitted whole rather than truncated,
// so no text is ever lost. A sentence exactly equal to maxSize is kept
// intact.
//
// Chunk indices are assigned in emission order starting at 0 and are
// contiguous. Empty input yields no chunks.
func BuildChunks(sentences []string, pageNumber, maxSize int) []Chunk {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	var chunks []Chunk
	var pending []string
	length := 0
	index := 0

	emit := func(parts []string) {
		chunks = append(chunks, Chunk{
			Text:            strings.Join(parts, " "),
			PageNumber:      pageNumber,
			ChunkIndex:      index,
			IsSentenceStart: true,
		})
		index++
	}
	flush := func() {
		if len(pending) == 0 {
			return
		}
		emit(pending)
		pending = pending[:0]
		length = 0
	}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		joined := length + len(sentence)
		if len(pending) > 0 {
			joined++ // separating space
		}
		if joined > maxSize && len(pending) > 0 {
			flush()
		}

		// A lone sentence above the limit falls back to word boundaries.
		if len(sentence) > maxSize {
			flush()
			var words []string
			wordsLen := 0
			for _, word := range strings.Fields(sentence) {
				next := wordsLen + len(word)
				if len(words) > 0 {
					next++
				}
				if next > maxSize && len(words) > 0 {
					emit(words)
					words = words[:0]
					wordsLen = 0
				}
				words = append(words, word)
				if wordsLen > 0 {
					wordsLen++
				}
				wordsLen += len(word)
			}
			if len(words) > 0 {
				emit(words)
			}
			continue
		}

		pending = append(pending, sentence)
		if length > 0 {
			length++
		}
		length += len(sentence)
	}
	flush()

	return chunks
}
