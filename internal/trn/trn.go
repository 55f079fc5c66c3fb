// Package trn reads and writes NIST sclite-style transcript files: one
// utterance per line, text followed by its parenthesized identifier, e.g.
//
//	the quick brown fox (utt001)
//
// The identifier is taken from the last parenthesized group on the line;
// anything after its closing parenthesis is ignored.
package trn

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoID is returned when a line does not end in a parenthesized
// utterance identifier.
var ErrNoID = errors.New("line does not end in utterance id")

// Record is one transcript line: its text and utterance identifier.
type Record struct {
	Text string
	ID   string
}

// SplitID separates a transcript line into its text and identifier.
// The identifier is the content of the last '('...')' pair; the text is
// everything before the last '(', with surrounding whitespace trimmed.
func SplitID(line string) (text, id string, err error) {
	open := strings.LastIndex(line, "(")
	closing := strings.LastIndex(line, ")")
	if open < 0 || closing < 0 || open > closing {
		return "", "", fmt.Errorf("%w: %q", ErrNoID, line)
	}
	return strings.TrimSpace(line[:open]), line[open+1 : closing], nil
}

// ParseLine parses a transcript line into a Record.
func ParseLine(line string) (Record, error) {
	text, id, err := SplitID(line)
	if err != nil {
		return Record{}, err
	}
	return Record{Text: text, ID: id}, nil
}

// FormatLine renders a Record back into transcript form.
func FormatLine(r Record) string {
	if r.Text == "" {
		return fmt.Sprintf("(%s)", r.ID)
	}
	return fmt.Sprintf("%s (%s)", r.Text, r.ID)
}

// ReadFile parses every non-blank line of the named transcript file.
// Parse errors carry the 1-based line number.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript file: %w", err)
	}
	return records, nil
}

// WriteFile writes records to the named path in transcript form, one per
// line, replacing any existing file.
func WriteFile(path string, records []Record) error {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(FormatLine(r))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write transcript file: %w", err)
	}
	return nil
}
