package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/analyze"
)

func analyzeCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [filename]",
		Aliases: []string{"analyse"},
		Short:   "Print every statistic of the log file",
		Args:    cobra.MaximumNArgs(1),
	}
	config := analyze.DefaultConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, config, err := g.newAnalyzer(cmd, filenameFromArgs(args), config)
		if err != nil {
			return err
		}
		return g.Run(func() (err error) {
			defer func() {
				err = errors.Join(err, a.Close())
			}()
			o, err := analyze.GetOutputter(config.Format)
			if err != nil {
				return err
			}
			r, err := a.Report()
			if err != nil {
				return err
			}
			return o.Print(cmd.OutOrStdout(), &r)
		})
	}
	return cmd
}
