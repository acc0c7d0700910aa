package cmd

import (
	"github.com/spf13/cobra"
)

func showHelp(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weblog",
		Short: "Hour, day and month access statistics for web server logs",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}
	g := new(globalOptions)
	g.InstallFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		analyzeCmd(g),
		queryCmd(g),
		countsCmd(g),
		printCmd(g),
		generateCmd(g),
		listCmd(),
	)
	return rootCmd
}
