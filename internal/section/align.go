// Package section partitions a perplexity-scored corpus into
// equal-population difficulty bins: it aligns perplexity records with the
// hypothesis-transcript id set, trims the extreme-perplexity ranks, assigns
// the survivors to bins by sorted rank, and materializes per-bin
// reference/hypothesis transcript files in original corpus order.
package section

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/go-strata/internal/perplexity"
)

// Aligned is a perplexity record annotated with its 1-based rank in the
// filtered, unsorted record stream (counting only records whose id occurs
// in the hypothesis set, in perplexity-file order).
type Aligned struct {
	perplexity.Record
	Position int
}

// MissingUtterancesError reports hypothesis ids that do not occur in the
// perplexity file. IDs are sorted.
type MissingUtterancesError struct {
	IDs []string
}

func (e *MissingUtterancesError) Error() string {
	return fmt.Sprintf("%d hypothesis utterance(s) missing from perplexity file: %s",
		len(e.IDs), strings.Join(e.IDs, " "))
}

// Align filters records down to those whose id occurs in hypIDs, preserving
// perplexity-file order and numbering the survivors with 1-based positions.
// Every hypothesis id must occur among the perplexity records; otherwise a
// *MissingUtterancesError naming the absent ids is returned and no records
// are emitted.
func Align(records []perplexity.Record, hypIDs []string) ([]Aligned, error) {
	known := make(map[string]struct{}, len(records))
	for _, r := range records {
		known[r.ID] = struct{}{}
	}

	wanted := make(map[string]struct{}, len(hypIDs))
	var missing []string
	for _, id := range hypIDs {
		if _, ok := wanted[id]; ok {
			continue
		}
		wanted[id] = struct{}{}
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingUtterancesError{IDs: missing}
	}

	var aligned []Aligned
	for _, r := range records {
		if _, ok := wanted[r.ID]; !ok {
			continue
		}
		aligned = append(aligned, Aligned{Record: r, Position: len(aligned) + 1})
	}
	return aligned, nil
}
