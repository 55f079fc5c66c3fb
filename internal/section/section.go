package section

import (
	"fmt"
	"log/slog"

	"github.com/example/go-strata/internal/perplexity"
	"github.com/example/go-strata/internal/tokenizer"
	"github.com/example/go-strata/internal/trn"
)

// Runner holds the knobs for one sectioning run.
type Runner struct {
	// Cut is the trim fraction per extreme. Zero means no trimming.
	Cut float64
	// Tok re-tokenizes hypothesis lines on emission.
	Tok *tokenizer.Tokenizer
	// MarkerName overrides the completion marker file name.
	MarkerName string
}

// Run sections the corpus described by perpPath and hypPath into binCount
// bins under outDir. If outDir's completion marker already records
// perpPath, the run is a no-op.
func (r *Runner) Run(perpPath, hypPath string, binCount int, outDir string) error {
	mat := &Materializer{Tok: r.Tok, MarkerName: r.MarkerName}

	if mat.Complete(outDir, perpPath) {
		slog.Info("output already sectioned, skipping", "out_dir", outDir, "perplexity_file", perpPath)
		return nil
	}

	perps, err := perplexity.ReadFile(perpPath)
	if err != nil {
		return err
	}
	hyps, err := trn.ReadFile(hypPath)
	if err != nil {
		return err
	}
	hypIDs := make([]string, len(hyps))
	for i, h := range hyps {
		hypIDs[i] = h.ID
	}

	aligned, err := Align(perps, hypIDs)
	if err != nil {
		return err
	}
	if len(aligned) != len(hyps) {
		return fmt.Errorf("aligned %d perplexity records for %d hypothesis records; duplicate utterance ids in input", len(aligned), len(hyps))
	}
	slog.Info("aligned records", "count", len(aligned), "perplexity_file", perpPath, "hypothesis_file", hypPath)

	bins, err := Partition(aligned, binCount, r.Cut)
	if err != nil {
		return err
	}
	counts := make([]int, binCount+1)
	for _, b := range bins {
		counts[b]++
	}
	for b := 1; b <= binCount; b++ {
		slog.Info("bin populated", "bin", b, "records", counts[b])
	}
	slog.Info("records trimmed", "count", len(aligned)-len(bins), "cut", r.Cut)

	return mat.Materialize(outDir, binCount, bins, aligned, hyps, perpPath)
}
