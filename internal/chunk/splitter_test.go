package chunk

import (
	"reflect"
	"testing"
)

func TestSplitSentences_Basic(t *testing.T) {
	got := SplitSentences("First sentence. Second sentence. Third sentence.")
	want := []string{"First sentence.", "Second sentence.", "Third sentence."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitSentences_MixedTerminators(t *testing.T) {
	got := SplitSentences("Really? Yes! Good.")
	want := []string{"Really?", "Yes!", "Good."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitSentences_TrailingFragment(t *testing.T) {
	got := SplitSentences("Complete sentence. And a trailing fragment")
	want := []string{"Complete sentence.", "And a trailing fragment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	got := SplitSentences("no punctuation here at all")
	if len(got) != 1 || got[0] != "no punctuation here at all" {
		t.Errorf("expected single sentence, got %v", got)
	}
}

func TestSplitSentences_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		if got := SplitSentences(input); got != nil {
			t.Errorf("input %q: expected nil, got %v", input, got)
		}
	}
}

func TestSplitSentences_TerminatorNeedsPrecedingCharacter(t *testing.T) {
	// A terminator as the very first character of a run does not end a
	// sentence on its own.
	got := SplitSentences(".start of text. more text.")
	want := []string{".start of text.", "more text."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitSentences_Deterministic(t *testing.T) {
	input := "One. Two! Three? Four"
	first := SplitSentences(input)
	second := SplitSentences(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
}
