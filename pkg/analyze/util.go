package analyze

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/taoky/weblog/pkg/parser"
)

type FormatFlag string

const (
	FormatText  FormatFlag = "text"
	FormatTable FormatFlag = "table"
	FormatJSON  FormatFlag = "json"
)

func (f FormatFlag) String() string {
	return string(f)
}

func (f *FormatFlag) Set(value string) error {
	switch value {
	case "text", "plain":
		*f = FormatText
	case "table":
		*f = FormatTable
	case "json":
		*f = FormatJSON
	default:
		return errors.New(`must be one of "text", "table" or "json"`)
	}
	return nil
}

func (f FormatFlag) Type() string {
	return "string"
}

type AnalyzerConfig struct {
	Format    FormatFlag `mapstructure:"format"`
	Legacy    bool       `mapstructure:"legacy"`
	LogOutput string     `mapstructure:"outlog"`
	NoColor   bool       `mapstructure:"no-color"`
	Parser    string     `mapstructure:"parser"`
	Progress  bool       `mapstructure:"progress"`
	Strict    bool       `mapstructure:"strict"`
}

func (c *AnalyzerConfig) InstallFlags(flags *pflag.FlagSet) {
	flags.VarP(&c.Format, "format", "f", "Output format (text|table|json)")
	flags.BoolVar(&c.Legacy, "legacy", c.Legacy, "Reproduce the historical table sizes, seeds and per-month totals")
	flags.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output")
	c.InstallInputFlags(flags)
}

// InstallInputFlags installs only the flags that control reading the
// log: parser, strictness, progress and the log output file.
func (c *AnalyzerConfig) InstallInputFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.LogOutput, "outlog", "o", c.LogOutput, "Change log output file")
	flags.StringVarP(&c.Parser, "parser", "p", c.Parser, "Log parser (see \"weblog list parsers\")")
	flags.BoolVar(&c.Progress, "progress", c.Progress, "Show a progress bar when stderr is a terminal")
	flags.BoolVar(&c.Strict, "strict", c.Strict, "Fail on malformed lines instead of skipping them")
}

// Validate checks values that may come from a config file, where
// they bypass the flag setters.
func (c *AnalyzerConfig) Validate() error {
	var format FormatFlag
	if err := format.Set(string(c.Format)); err != nil {
		return fmt.Errorf("invalid format %q: %w", c.Format, err)
	}
	c.Format = format
	if _, err := parser.GetParser(c.Parser); err != nil {
		return fmt.Errorf("invalid parser: %w", err)
	}
	return nil
}

func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Format:   FormatText,
		Parser:   "weblog",
		Progress: true,
	}
}
