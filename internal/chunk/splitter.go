package chunk

import "strings"

// SplitSentences splits text into sentences at terminal punctuation
// (period, exclamation mark, question mark). A terminator only ends a
// sentence when at least one character precedes it in the current run,
// and a trailing fragment without terminal punctuation is still emitted
// as a final sentence. Empty or whitespace-only input yields nil.
//
// The splitter never fails: text it cannot segment comes back as a
// single sentence.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder
	runes := 0

	for _, r := range text {
		current.WriteRune(r)
		runes++
		if isTerminal(r) && runes > 1 {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			runes = 0
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
