package main

import (
	"log/slog"
	"os"

	"github.com/example/go-strata/internal/config"
	"github.com/example/go-strata/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Perplexity-stratified corpus sectioning",
		Long: "strata partitions a speech corpus into equal-population difficulty bins\n" +
			"by language-model perplexity, producing per-bin reference and hypothesis\n" +
			"transcript files for recognition-accuracy analysis.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newSectionCmd())
	cmd.AddCommand(newTokenizeCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func activeTokenizer() *tokenizer.Tokenizer {
	return tokenizer.New(
		activeCfg.Tokenizer.WordDelimiter,
		activeCfg.Tokenizer.Filler,
		activeCfg.Tokenizer.Clusters,
	)
}
