// Package perplexity reads perplexity-annotated utterance files as produced
// by an external language-model scoring tool: one record per line, three
// tab-separated fields
//
//	perplexity<TAB>text<TAB>(id)
//
// File order is whatever order utterances were enumerated upstream; it is
// not sorted by any field.
package perplexity

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/go-strata/internal/trn"
)

// Record is one scored utterance.
type Record struct {
	Perplexity float64
	Text       string
	ID         string
}

// ParseLine parses a single tab-separated perplexity record.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 tab-separated fields, got %d", len(fields))
	}
	perp, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("parse perplexity value %q: %w", fields[0], err)
	}
	_, id, err := trn.SplitID(fields[2])
	if err != nil {
		return Record{}, err
	}
	return Record{
		Perplexity: perp,
		Text:       strings.TrimSpace(fields[1]),
		ID:         id,
	}, nil
}

// ReadFile parses every non-blank line of the named perplexity file,
// preserving file order. Parse errors carry the 1-based line number.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open perplexity file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read perplexity file: %w", err)
	}
	return records, nil
}
