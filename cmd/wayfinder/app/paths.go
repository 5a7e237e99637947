package app

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfinder/pathing"
)

func newPathsCmd(opts *Options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Plan every route for one graph (or all of them)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.Planner()
			if err != nil {
				return err
			}
			first, last := opts.Graph, opts.Graph
			if all {
				first, last = 0, p.Len()-1
			}
			for i := first; i <= last; i++ {
				plan, err := p.Plan(i)
				if err != nil {
					return err
				}
				sc, _ := p.Scenario(i)
				printPlan(cmd.OutOrStdout(), sc.Name, plan)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "plan every graph in the data file")
	return cmd
}

func printPlan(out io.Writer, name string, plan *pathing.Plan) {
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(out, "graph %d (%s) target %d\n", plan.Index, name, plan.Target)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tHOPS\tWEIGHT\tPATH")
	for _, e := range plan.Entries {
		if !e.Found() {
			fmt.Fprintf(tw, "%s\t-\t-\tno path\n", e.Strategy)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%v\n", e.Strategy, e.Hops, e.Weight, e.Path)
	}
	tw.Flush()
	fmt.Fprintf(out, "reference %s\n", formatWeight(plan.Reference))
}

func formatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.3f", w)
}
