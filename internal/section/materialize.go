package section

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/go-strata/internal/tokenizer"
	"github.com/example/go-strata/internal/trn"
)

// DefaultMarkerName is the completion marker written into the output
// directory after all bins are materialized.
const DefaultMarkerName = ".complete"

// RefFileName and HypFileName are the per-bin transcript file names the
// downstream error-rate estimator expects.
const (
	RefFileName = "ref.trn"
	HypFileName = "hyp.trn"
)

// Materializer writes per-bin reference and hypothesis transcript files.
type Materializer struct {
	// Tok re-tokenizes hypothesis text on emission (plain mode).
	Tok *tokenizer.Tokenizer
	// MarkerName is the completion marker file name; DefaultMarkerName if empty.
	MarkerName string
}

func (m *Materializer) markerPath(outDir string) string {
	name := m.MarkerName
	if name == "" {
		name = DefaultMarkerName
	}
	return filepath.Join(outDir, name)
}

// canonicalPath resolves p to an absolute cleaned form so the completion
// marker matches the same file regardless of how its path was spelled.
func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// Complete reports whether outDir carries a completion marker recording
// perpPath, meaning a previous run already materialized this split.
func (m *Materializer) Complete(outDir, perpPath string) bool {
	b, err := os.ReadFile(m.markerPath(outDir))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(b)) == canonicalPath(perpPath)
}

// Materialize writes ref.trn and hyp.trn for every bin in [1, binCount]
// under outDir/<bin>, then the completion marker recording perpPath.
//
// bins maps utterance id to bin index (trimmed ids absent). Reference lines
// are the aligned records in position order, so both files restore original
// corpus order. Hypothesis text is matched to its reference line by
// utterance id and re-tokenized before emission. Bins with no records still
// get their directory and empty files.
func (m *Materializer) Materialize(outDir string, binCount int, bins map[string]int, aligned []Aligned, hyps []trn.Record, perpPath string) error {
	hypByID := make(map[string]trn.Record, len(hyps))
	for _, h := range hyps {
		if _, ok := hypByID[h.ID]; ok {
			continue // first occurrence wins
		}
		hypByID[h.ID] = h
	}

	refs := make(map[int][]trn.Record, binCount)
	binHyps := make(map[int][]trn.Record, binCount)
	for _, rec := range aligned {
		b, ok := bins[rec.ID]
		if !ok {
			continue // trimmed
		}
		hyp, ok := hypByID[rec.ID]
		if !ok {
			return fmt.Errorf("no hypothesis for aligned utterance %q", rec.ID)
		}
		refs[b] = append(refs[b], trn.Record{Text: rec.Text, ID: rec.ID})
		binHyps[b] = append(binHyps[b], m.Tok.RetokenizeRecord(hyp, false))
	}

	for b := 1; b <= binCount; b++ {
		dir := filepath.Join(outDir, strconv.Itoa(b))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bin directory: %w", err)
		}
		if err := trn.WriteFile(filepath.Join(dir, RefFileName), refs[b]); err != nil {
			return err
		}
		if err := trn.WriteFile(filepath.Join(dir, HypFileName), binHyps[b]); err != nil {
			return err
		}
	}

	if err := os.WriteFile(m.markerPath(outDir), []byte(canonicalPath(perpPath)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write completion marker: %w", err)
	}
	return nil
}
