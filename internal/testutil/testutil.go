// Package testutil provides shared fixture helpers for tests that need
// transcript and perplexity files on disk.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-strata/internal/perplexity"
	"github.com/example/go-strata/internal/trn"
)

// WriteTRN writes records to dir/name in transcript form and returns the
// file path.
func WriteTRN(tb testing.TB, dir, name string, records []trn.Record) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := trn.WriteFile(path, records); err != nil {
		tb.Fatalf("write trn fixture %s: %v", name, err)
	}
	return path
}

// WritePerplexity writes records to dir/name in tab-separated perplexity
// form and returns the file path.
func WritePerplexity(tb testing.TB, dir, name string, records []perplexity.Record) string {
	tb.Helper()

	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%g\t%s\t(%s)\n", r.Perplexity, r.Text, r.ID)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		tb.Fatalf("write perplexity fixture %s: %v", name, err)
	}
	return path
}
