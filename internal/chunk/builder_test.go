package chunk

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

// words returns the sorted word multiset of all chunk texts.
func chunkWords(chunks []Chunk) []string {
	var all []string
	for _, c := range chunks {
		all = append(all, strings.Fields(c.Text)...)
	}
	sort.Strings(all)
	return all
}

func sortedWords(text string) []string {
	all := strings.Fields(text)
	sort.Strings(all)
	return all
}

func TestBuildChunks_ThreeSentences(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence."
	chunks := BuildChunks(SplitSentences(text), 1, 100)

	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}
	if !strings.HasPrefix(chunks[0].Text, "First sentence") {
		t.Errorf("expected chunk 0 to start with %q, got %q", "First sentence", chunks[0].Text)
	}
	if !reflect.DeepEqual(chunkWords(chunks), sortedWords(text)) {
		t.Errorf("word content not preserved: %v vs %v", chunkWords(chunks), sortedWords(text))
	}
}

func TestBuildChunks_RepeatedWordRespectsLimit(t *testing.T) {
	// 30 repetitions of "word " is 150 characters; with a 50-character
	// limit at least 3 chunks are needed.
	text := strings.TrimSpace(strings.Repeat("word ", 30))
	chunks := BuildChunks(SplitSentences(text), 1, 50)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Text) > 50 {
			t.Errorf("chunk %d: length %d exceeds limit 50", i, len(c.Text))
		}
	}
	if !reflect.DeepEqual(chunkWords(chunks), sortedWords(text)) {
		t.Errorf("word content not preserved")
	}
}

func TestBuildChunks_SizeBoundOrSingleWord(t *testing.T) {
	text := "Short one. " + strings.Repeat("filler ", 40) + "end. Tail sentence without stop"
	for _, maxSize := range []int{20, 50, 100, 2000} {
		chunks := BuildChunks(SplitSentences(text), 1, maxSize)
		for i, c := range chunks {
			if len(c.Text) > maxSize && strings.ContainsRune(c.Text, ' ') {
				t.Errorf("maxSize %d: chunk %d exceeds limit and is not a single word: %q", maxSize, i, c.Text)
			}
		}
		if !reflect.DeepEqual(chunkWords(chunks), sortedWords(text)) {
			t.Errorf("maxSize %d: word content not preserved", maxSize)
		}
	}
}

func TestBuildChunks_OversizedWordEmittedWhole(t *testing.T) {
	long := strings.Repeat("x", 80)
	chunks := BuildChunks([]string{"small words here " + long + " more small"}, 1, 20)

	found := false
	for _, c := range chunks {
		if c.Text == long {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the oversized word to be emitted whole, got %v", chunks)
	}
}

func TestBuildChunks_ExactFitKeptIntact(t *testing.T) {
	sentence := strings.Repeat("a", 47) + " b." // 50 characters
	if len(sentence) != 50 {
		t.Fatalf("test setup: sentence is %d chars", len(sentence))
	}
	chunks := BuildChunks([]string{sentence}, 1, 50)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != sentence {
		t.Errorf("expected sentence kept intact, got %q", chunks[0].Text)
	}
}

func TestBuildChunks_IndicesContiguous(t *testing.T) {
	text := strings.Repeat("A sentence of a handful of words. ", 60)
	chunks := BuildChunks(SplitSentences(text), 3, 80)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.ChunkIndex != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, c.ChunkIndex)
		}
		if c.PageNumber != 3 {
			t.Errorf("chunk %d: expected page 3, got %d", i, c.PageNumber)
		}
		if !c.IsSentenceStart {
			t.Errorf("chunk %d: expected IsSentenceStart", i)
		}
	}
}

func TestBuildChunks_Idempotent(t *testing.T) {
	text := "Alpha beta gamma. Delta epsilon! Zeta eta theta? Iota kappa"
	first := BuildChunks(SplitSentences(text), 1, 25)
	second := BuildChunks(SplitSentences(text), 1, 25)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical chunk sequences, got %v and %v", first, second)
	}
}

func TestBuildChunks_EmptyInput(t *testing.T) {
	if got := BuildChunks(nil, 1, 100); len(got) != 0 {
		t.Errorf("expected no chunks for nil input, got %v", got)
	}
	if got := BuildChunks(SplitSentences("   "), 1, 100); len(got) != 0 {
		t.Errorf("expected no chunks for blank input, got %v", got)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		page    int
		index   int
		wantErr bool
	}{
		{"valid", "hello", 1, 0, false},
		{"empty text", "", 1, 0, true},
		{"whitespace text", "  \t", 1, 0, true},
		{"zero page", "hello", 0, 0, true},
		{"negative page", "hello", -1, 0, true},
		{"negative index", "hello", 1, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.text, tt.page, tt.index)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.IsSentenceStart {
				t.Error("expected IsSentenceStart to default to true")
			}
		})
	}
}
