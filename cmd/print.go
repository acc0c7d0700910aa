package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/analyze"
)

func printCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [filename]",
		Short: "Print parsed records in weblog format",
		Args:  cobra.MaximumNArgs(1),
	}
	config := analyze.DefaultConfig()
	config.InstallInputFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		config, err := g.loadConfig(cmd, config)
		if err != nil {
			return err
		}
		filename := filenameFromArgs(args)
		fmt.Fprintln(cmd.ErrOrStderr(), "Using log file:", filename)
		cmd.SilenceUsage = true

		return g.Run(func() error {
			return analyze.PrintFileData(config, filename, cmd.OutOrStdout())
		})
	}
	return cmd
}
