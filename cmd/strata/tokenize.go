package main

import (
	"fmt"
	"strings"

	"github.com/example/go-strata/internal/trn"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var phonetic bool

	cmd := &cobra.Command{
		Use:   "tokenize TRN_FILE OUT_FILE",
		Short: "Re-tokenize a transcript file into atomic units",
		Long: "tokenize splits each line's text into single characters (or, with\n" +
			"--phonetic, IPA clusters), marking word boundaries with the configured\n" +
			"delimiter. The result is the input an external perplexity scorer consumes.\n" +
			"OUT_FILE of '-' writes to stdout.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			if err := requireFile(inPath, "transcript file"); err != nil {
				return err
			}

			records, err := trn.ReadFile(inPath)
			if err != nil {
				return err
			}

			tok := activeTokenizer()
			out := make([]trn.Record, len(records))
			for i, r := range records {
				out[i] = tok.RetokenizeRecord(r, phonetic)
			}

			if outPath == "-" {
				return writeRecords(cmd.OutOrStdout().Write, out)
			}
			return trn.WriteFile(outPath, out)
		},
	}

	cmd.Flags().BoolVar(&phonetic, "phonetic", false, "Recognize configured IPA clusters as single tokens")

	return cmd
}

func writeRecords(write func([]byte) (int, error), records []trn.Record) error {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(trn.FormatLine(r))
		b.WriteByte('\n')
	}
	if _, err := write([]byte(b.String())); err != nil {
		return fmt.Errorf("write tokenized output: %w", err)
	}
	return nil
}
