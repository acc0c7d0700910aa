package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/taoky/weblog/pkg/analyze"
	"github.com/taoky/weblog/pkg/util"
)

const defaultFilename = "weblog.txt"

type globalOptions struct {
	ConfigFile string
	CPUProfile string
	MemProfile string
}

func (g *globalOptions) InstallFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&g.ConfigFile, "config", "c", "", "Read analyzer options from a config file")
	flags.StringVar(&g.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flags.StringVar(&g.MemProfile, "memprofile", "", "Write memory profile to file")
}

// Run calls fn under the requested profilers.
func (g *globalOptions) Run(fn func() error) error {
	var err error
	if g.CPUProfile != "" {
		err = util.RunCPUProfile(g.CPUProfile, fn)
	} else {
		err = fn()
	}
	if err != nil {
		return err
	}
	if g.MemProfile != "" {
		return util.MemProfile(g.MemProfile)
	}
	return nil
}

// loadConfig layers the config file and WEBLOG_* environment variables
// under the command line flags of cmd, starting from base.
func (g *globalOptions) loadConfig(cmd *cobra.Command, base analyze.AnalyzerConfig) (analyze.AnalyzerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("WEBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if g.ConfigFile != "" {
		v.SetConfigFile(g.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return base, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return base, err
	}

	c := base
	if err := v.Unmarshal(&c); err != nil {
		return base, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return base, err
	}
	return c, nil
}

func filenameFromArgs(args []string) string {
	if len(args) == 0 {
		return defaultFilename
	}
	return args[0]
}

// newAnalyzer resolves the effective config and opens filename. The
// caller closes the analyzer.
func (g *globalOptions) newAnalyzer(cmd *cobra.Command, filename string, base analyze.AnalyzerConfig) (*analyze.Analyzer, analyze.AnalyzerConfig, error) {
	config, err := g.loadConfig(cmd, base)
	if err != nil {
		return nil, config, err
	}
	if config.NoColor {
		color.NoColor = true
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using log file:", filename)
	cmd.SilenceUsage = true

	a, err := analyze.NewFileAnalyzer(config, filename)
	if err != nil {
		return nil, config, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return a, config, nil
}
