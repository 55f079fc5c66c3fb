// Package tokenizer splits transcript text into phonetically atomic units.
//
// Both modes first collapse whitespace runs and mark word boundaries with a
// configurable delimiter token so boundaries survive character splitting.
// Plain mode then emits every character as its own token; phonetic mode
// recognizes a configurable inventory of multi-codepoint IPA clusters (and
// the filler marker) as single tokens before falling back to characters.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/example/go-strata/internal/trn"
)

// Tokenizer splits word-level text into atomic units.
type Tokenizer struct {
	wordDelimiter string
	// patterns holds the filler marker followed by the cluster inventory,
	// longest-first, so matching is greedy left-to-right.
	patterns []string
}

// New returns a Tokenizer using the given word-boundary delimiter, filler
// marker, and cluster inventory. Clusters are matched longest-first; the
// filler marker is always tried first.
func New(wordDelimiter, filler string, clusters []string) *Tokenizer {
	ordered := make([]string, 0, len(clusters)+1)
	for _, c := range clusters {
		if c != "" {
			ordered = append(ordered, c)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	if filler != "" {
		ordered = append([]string{filler}, ordered...)
	}
	return &Tokenizer{
		wordDelimiter: wordDelimiter,
		patterns:      ordered,
	}
}

// Tokenize splits text into single-character tokens, with the word
// delimiter emitted between words. Whitespace runs collapse to single
// boundaries; empty or whitespace-only input yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.split(text, false)
}

// TokenizePhonetic is Tokenize with cluster recognition: the filler marker
// and each configured IPA cluster are emitted as single tokens. Matching is
// strictly left-to-right, non-overlapping, and greedy on the ordered
// pattern list; unmatched characters pass through one at a time.
func (t *Tokenizer) TokenizePhonetic(text string) []string {
	return t.split(text, true)
}

func (t *Tokenizer) split(text string, phonetic bool) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var tokens []string
	for i, word := range words {
		if i > 0 {
			tokens = append(tokens, t.wordDelimiter)
		}
		tokens = t.splitWord(tokens, word, phonetic)
	}
	return tokens
}

func (t *Tokenizer) splitWord(tokens []string, word string, phonetic bool) []string {
	for len(word) > 0 {
		if phonetic {
			if p := t.matchPattern(word); p != "" {
				tokens = append(tokens, p)
				word = word[len(p):]
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(word)
		tokens = append(tokens, word[:size])
		word = word[size:]
	}
	return tokens
}

func (t *Tokenizer) matchPattern(s string) string {
	for _, p := range t.patterns {
		if strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}

// RetokenizeLine re-tokenizes one transcript line's text, returning the
// tokens joined by single spaces with the trailing utterance identifier
// re-appended unsplit.
func (t *Tokenizer) RetokenizeLine(line string, phonetic bool) (string, error) {
	text, id, err := trn.SplitID(line)
	if err != nil {
		return "", err
	}
	var tokens []string
	if phonetic {
		tokens = t.TokenizePhonetic(text)
	} else {
		tokens = t.Tokenize(text)
	}
	if len(tokens) == 0 {
		return id, nil
	}
	return fmt.Sprintf("%s %s", strings.Join(tokens, " "), id), nil
}

// RetokenizeRecord re-tokenizes a Record's text in place, leaving its
// identifier untouched.
func (t *Tokenizer) RetokenizeRecord(r trn.Record, phonetic bool) trn.Record {
	var tokens []string
	if phonetic {
		tokens = t.TokenizePhonetic(r.Text)
	} else {
		tokens = t.Tokenize(r.Text)
	}
	return trn.Record{Text: strings.Join(tokens, " "), ID: r.ID}
}
