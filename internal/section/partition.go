package section

import (
	"fmt"
	"sort"
)

// DefaultCut is the fraction of records trimmed from each perplexity
// extreme before binning.
const DefaultCut = 0.05

// Partition sorts aligned records by perplexity, trims the extreme ranks,
// and assigns each survivor to one of binCount equal-probability-mass bins.
// The result maps utterance id to 1-based bin index; trimmed records are
// absent from the map.
//
// With L records and 1-based sorted rank r, a record is retained iff
// L*cut < r <= L*(1-cut), and a retained record lands in the unique bin i
// satisfying
//
//	L*(1-2*cut)*(i-1)/binCount + L*cut < r <= L*(1-2*cut)*i/binCount + L*cut
//
// Bounds are real-valued and compared without rounding: intervals are open
// on the low end and closed on the high end, so boundary ranks fall into
// the lower-indexed bin. The sort is stable; equal perplexities keep their
// relative input order.
func Partition(aligned []Aligned, binCount int, cut float64) (map[string]int, error) {
	if binCount < 1 {
		return nil, fmt.Errorf("bin count must be at least 1, got %d", binCount)
	}
	if cut < 0 || cut >= 0.5 {
		return nil, fmt.Errorf("cut fraction must be in [0, 0.5), got %v", cut)
	}

	ranked := make([]Aligned, len(aligned))
	copy(ranked, aligned)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Perplexity < ranked[j].Perplexity
	})

	l := float64(len(ranked))
	low := l * cut
	high := l * (1 - cut)
	span := l * (1 - 2*cut)

	bins := make(map[string]int, len(ranked))
	for i, rec := range ranked {
		r := float64(i + 1)
		if r <= low || r > high {
			continue
		}
		for b := 1; b <= binCount; b++ {
			lower := span*float64(b-1)/float64(binCount) + low
			upper := span*float64(b)/float64(binCount) + low
			if b == binCount {
				// The last bin's upper bound is the retention bound; use the
				// identical float so a retained record always lands somewhere.
				upper = high
			}
			if lower < r && r <= upper {
				bins[rec.ID] = b
				break
			}
		}
	}
	return bins, nil
}
