package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Section   SectionConfig   `mapstructure:"section"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	LogLevel  string          `mapstructure:"log_level"`
}

type SectionConfig struct {
	// Cut is the fraction of records trimmed from each perplexity extreme.
	Cut float64 `mapstructure:"cut"`
	// MarkerName is the completion marker file written into the output
	// directory after a successful split.
	MarkerName string `mapstructure:"marker_name"`
}

type TokenizerConfig struct {
	// WordDelimiter marks word boundaries in tokenized output.
	WordDelimiter string `mapstructure:"word_delimiter"`
	// Filler is emitted as a single token in phonetic mode.
	Filler string `mapstructure:"filler"`
	// Clusters are multi-codepoint IPA sequences emitted as single tokens
	// in phonetic mode.
	Clusters []string `mapstructure:"clusters"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Section: SectionConfig{
			Cut:        0.05,
			MarkerName: ".complete",
		},
		Tokenizer: TokenizerConfig{
			WordDelimiter: "_",
			Filler:        "[fil]",
			Clusters:      []string{"tʃ", "dʒ", "ts", "dz"},
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Float64("section-cut", defaults.Section.Cut, "Fraction of records trimmed from each perplexity extreme")
	fs.String("section-marker-name", defaults.Section.MarkerName, "Completion marker file name inside the output directory")
	fs.String("tokenizer-word-delimiter", defaults.Tokenizer.WordDelimiter, "Word-boundary token in tokenized output")
	fs.String("tokenizer-filler", defaults.Tokenizer.Filler, "Filler marker emitted atomically in phonetic mode")
	fs.StringSlice("tokenizer-clusters", defaults.Tokenizer.Clusters, "IPA clusters emitted as single tokens in phonetic mode")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("STRATA")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("strata")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("section.cut", c.Section.Cut)
	v.SetDefault("section.marker_name", c.Section.MarkerName)
	v.SetDefault("tokenizer.word_delimiter", c.Tokenizer.WordDelimiter)
	v.SetDefault("tokenizer.filler", c.Tokenizer.Filler)
	v.SetDefault("tokenizer.clusters", c.Tokenizer.Clusters)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each flag to its dotted config key so that changed flags
// take precedence over config-file values while Unmarshal still sees the
// nested key structure.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	keys := map[string]string{
		"section.cut":              "section-cut",
		"section.marker_name":      "section-marker-name",
		"tokenizer.word_delimiter": "tokenizer-word-delimiter",
		"tokenizer.filler":         "tokenizer-filler",
		"tokenizer.clusters":       "tokenizer-clusters",
		"log_level":                "log-level",
	}
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
