package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/generate"
)

func generateCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic weblog file",
		Args:  cobra.NoArgs,
	}
	config := generate.DefaultConfig()
	var output string
	flags := cmd.Flags()
	flags.IntVarP(&config.Count, "count", "n", config.Count, "Number of records")
	flags.IntVar(&config.Year, "year", config.Year, "Year of the records")
	flags.Uint64Var(&config.Seed, "seed", config.Seed, "Random seed")
	flags.StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(); err != nil {
			return err
		}
		cmd.SilenceUsage = true
		return g.Run(func() (err error) {
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer func() {
					err = errors.Join(err, f.Close())
				}()
				w = f
			}
			return generate.Write(w, config)
		})
	}
	return cmd
}
