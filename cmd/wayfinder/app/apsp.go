package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAPSPCmd(opts *Options) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "Print the all-pairs shortest distances of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.Planner()
			if err != nil {
				return err
			}
			paths, err := p.AllPairs(opts.Graph)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if paths.NegativeCycle() {
				fmt.Fprintln(out, "warning: negative cycle")
			}
			for _, row := range paths.Dist {
				cells := make([]string, len(row))
				for j, d := range row {
					cells[j] = formatWeight(d)
				}
				fmt.Fprintln(out, strings.Join(cells, " "))
			}

			if from < 0 || to < 0 {
				return nil
			}
			path, err := paths.Path(from, to)
			if err != nil {
				return err
			}
			if path.Empty() {
				fmt.Fprintf(out, "%d→%d: no path\n", from, to)
				return nil
			}
			fmt.Fprintf(out, "%d→%d: %v (%s)\n", from, to, path, formatWeight(paths.Dist[from][to]))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", -1, "reconstruct the path from this node")
	cmd.Flags().IntVar(&to, "to", -1, "reconstruct the path to this node")
	return cmd
}
