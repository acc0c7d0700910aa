package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/analyze"
)

var countTables = map[string]func(*analyze.Analyzer, io.Writer) error{
	"hourly":         (*analyze.Analyzer).PrintHourlyCounts,
	"daily":          (*analyze.Analyzer).PrintDailyCounts,
	"monthly":        (*analyze.Analyzer).PrintMonthlyCounts,
	"monthly-totals": (*analyze.Analyzer).PrintMonthTotals,
}

func countsCmd(g *globalOptions) *cobra.Command {
	names := make([]string, 0, len(countTables))
	for name := range countTables {
		names = append(names, name)
	}
	slices.Sort(names)

	cmd := &cobra.Command{
		Use:       "counts <" + strings.Join(names, "|") + "> [filename]",
		Short:     "Print the access count of every hour, day or month",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: names,
	}
	config := analyze.DefaultConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		write, ok := countTables[args[0]]
		if !ok {
			return fmt.Errorf("unknown table %q (want one of %s)", args[0], strings.Join(names, ", "))
		}
		a, _, err := g.newAnalyzer(cmd, filenameFromArgs(args[1:]), config)
		if err != nil {
			return err
		}
		return g.Run(func() (err error) {
			defer func() {
				err = errors.Join(err, a.Close())
			}()
			return write(a, cmd.OutOrStdout())
		})
	}
	return cmd
}
