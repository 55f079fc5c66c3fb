package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/example/go-strata/internal/section"
	"github.com/spf13/cobra"
)

func newSectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section PERPLEXITY_FILE HYPOTHESIS_FILE BIN_COUNT OUT_DIR",
		Short: "Split a corpus into perplexity-ranked difficulty bins",
		Long: "section aligns a perplexity file with a hypothesis transcript file, trims\n" +
			"the extreme-perplexity records, assigns the rest to BIN_COUNT equal-population\n" +
			"bins, and writes ref.trn/hyp.trn per bin under OUT_DIR. A completion marker\n" +
			"in OUT_DIR makes re-runs on the same perplexity file a no-op.",
		Args: cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			perpPath, hypPath := args[0], args[1]
			binCount, err := parseBinCount(args[2])
			if err != nil {
				return err
			}
			outDir := args[3]

			if err := requireFile(perpPath, "perplexity file"); err != nil {
				return err
			}
			if err := requireFile(hypPath, "hypothesis file"); err != nil {
				return err
			}
			if err := requireDir(outDir, "output directory"); err != nil {
				return err
			}

			runner := &section.Runner{
				Cut:        activeCfg.Section.Cut,
				Tok:        activeTokenizer(),
				MarkerName: activeCfg.Section.MarkerName,
			}
			return runner.Run(perpPath, hypPath, binCount, outDir)
		},
	}

	return cmd
}

func parseBinCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bin count %q is not an integer", arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("bin count must be non-negative, got %d", n)
	}
	return n, nil
}

func requireFile(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %q does not exist", what, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q is a directory", what, path)
	}
	return nil
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %q does not exist", what, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", what, path)
	}
	return nil
}
