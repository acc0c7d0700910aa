package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/analyze"
)

type statistic struct {
	Description string
	Query       func(*analyze.Analyzer) (int, error)
}

var statistics = map[string]statistic{
	"accesses": {"Total number of accesses", func(a *analyze.Analyzer) (int, error) {
		if err := a.AnalyzeHourly(); err != nil {
			return 0, err
		}
		return int(a.NumberOfAccesses()), nil
	}},
	"busiest-hour":     {"Hour of day (0-23) with the most accesses", (*analyze.Analyzer).BusiestHour},
	"quietest-hour":    {"Hour of day (0-23) with the fewest accesses", (*analyze.Analyzer).QuietestHour},
	"busiest-two-hour": {"First hour of the busiest two consecutive hours", (*analyze.Analyzer).BusiestTwoHourPeriod},
	"busiest-day":      {"Day of month with the most accesses", (*analyze.Analyzer).BusiestDay},
	"quietest-day":     {"Day of month with the fewest accesses", (*analyze.Analyzer).QuietestDay},
	"busiest-month":    {"Month (1-12) with the most accesses", (*analyze.Analyzer).BusiestMonth},
	"quietest-month":   {"Month (1-12) with the fewest accesses", (*analyze.Analyzer).QuietestMonth},
}

func statisticNames() []string {
	names := make([]string, 0, len(statistics))
	for name := range statistics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func queryCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "query <statistic> [filename]",
		Short:     "Print a single statistic of the log file",
		Long:      "Print a single statistic of the log file.\n\nStatistics: " + strings.Join(statisticNames(), ", "),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: statisticNames(),
	}
	config := analyze.DefaultConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		stat, ok := statistics[args[0]]
		if !ok {
			return fmt.Errorf("unknown statistic %q (want one of %s)", args[0], strings.Join(statisticNames(), ", "))
		}
		a, _, err := g.newAnalyzer(cmd, filenameFromArgs(args[1:]), config)
		if err != nil {
			return err
		}
		return g.Run(func() (err error) {
			defer func() {
				err = errors.Join(err, a.Close())
			}()
			v, err := stat.Query(a)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		})
	}
	return cmd
}
