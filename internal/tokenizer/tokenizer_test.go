package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func newTestTokenizer() *Tokenizer {
	return New("_", "[fil]", []string{"tʃ", "dʒ", "ts", "dz"})
}

func TestTokenize(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two words",
			input: "cat dog",
			want:  []string{"c", "a", "t", "_", "d", "o", "g"},
		},
		{
			name:  "single word",
			input: "cat",
			want:  []string{"c", "a", "t"},
		},
		{
			name:  "whitespace runs collapse",
			input: "  cat \t  dog  ",
			want:  []string{"c", "a", "t", "_", "d", "o", "g"},
		},
		{
			name:  "multi-byte characters are single tokens",
			input: "ʃɛ dʒa",
			want:  []string{"ʃ", "ɛ", "_", "d", "ʒ", "a"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace-only input",
			input: " \t\n ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizePhonetic(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "cluster emitted atomically",
			input: "dʒa",
			want:  []string{"dʒ", "a"},
		},
		{
			name:  "clusters across a word boundary stay separate",
			input: "d ʒa",
			want:  []string{"d", "_", "ʒ", "a"},
		},
		{
			name:  "filler marker emitted atomically",
			input: "a [fil] b",
			want:  []string{"a", "_", "[fil]", "_", "b"},
		},
		{
			name:  "matching is left-to-right non-overlapping",
			input: "tʃts",
			want:  []string{"tʃ", "ts"},
		},
		{
			name:  "unrecognized characters pass through",
			input: "x?9",
			want:  []string{"x", "?", "9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.TokenizePhonetic(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizePhonetic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizePhoneticLongestMatchFirst(t *testing.T) {
	// "abc" must win over "ab" regardless of configuration order.
	tok := New("_", "", []string{"ab", "abc"})
	got := tok.TokenizePhonetic("abcd")
	want := []string{"abc", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizePhonetic(%q) = %v, want %v", "abcd", got, want)
	}
}

func TestRetokenizeLine(t *testing.T) {
	tok := newTestTokenizer()

	got, err := tok.RetokenizeLine("cat dog (utt01)", false)
	if err != nil {
		t.Fatalf("RetokenizeLine: %v", err)
	}
	want := "c a t _ d o g utt01"
	if got != want {
		t.Errorf("RetokenizeLine = %q, want %q", got, want)
	}
}

func TestRetokenizeLinePhonetic(t *testing.T) {
	tok := newTestTokenizer()

	got, err := tok.RetokenizeLine("tʃa [fil] (fae_0007)", true)
	if err != nil {
		t.Fatalf("RetokenizeLine: %v", err)
	}
	want := "tʃ a _ [fil] fae_0007"
	if got != want {
		t.Errorf("RetokenizeLine = %q, want %q", got, want)
	}
}

func TestRetokenizeLineRejectsMissingID(t *testing.T) {
	tok := newTestTokenizer()

	_, err := tok.RetokenizeLine("no id at all", false)
	if err == nil {
		t.Fatal("expected error for line without utterance id")
	}
	if !strings.Contains(err.Error(), "utterance id") {
		t.Errorf("unexpected error text: %v", err)
	}
}
