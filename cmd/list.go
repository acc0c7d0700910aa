package cmd

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taoky/weblog/pkg/analyze"
	"github.com/taoky/weblog/pkg/parser"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <item>",
		Short: "List parsers or statistics",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}
	cmd.AddCommand(listParsersCmd(), listStatisticsCmd())
	return cmd
}

// writeList renders name/description rows as a plain table.
func writeList(cmd *cobra.Command, header string, rows [][2]string) error {
	table := analyze.NewTextTable(cmd.OutOrStdout())
	table.Header(header, "Description")
	for _, row := range rows {
		if err := table.Append(row[:]); err != nil {
			return err
		}
	}
	return table.Render()
}

func listParsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parsers",
		Short: "List available log parsers",
		Args:  cobra.NoArgs,
	}
	var all bool
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include hidden aliases")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		parsers := parser.All()
		slices.SortFunc(parsers, func(a, b parser.ParserMeta) int {
			return strings.Compare(a.Name, b.Name)
		})
		var rows [][2]string
		for _, p := range parsers {
			if all || !p.Hidden {
				rows = append(rows, [2]string{p.Name, p.Description})
			}
		}
		return writeList(cmd, "Name", rows)
	}
	return cmd
}

func listStatisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "statistics",
		Aliases: []string{"stats"},
		Short:   "List statistics accepted by \"weblog query\"",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := statisticNames()
			rows := make([][2]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, [2]string{name, statistics[name].Description})
			}
			return writeList(cmd, "Statistic", rows)
		},
	}
}
