package app

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfinder/graph"
)

func newNearestCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest X Y",
		Short: "Find the node closest to a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pt orb.Point
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("coordinate %q: %w", a, err)
				}
				pt[i] = v
			}

			p, err := opts.Planner()
			if err != nil {
				return err
			}
			sc, err := p.Scenario(opts.Graph)
			if err != nil {
				return err
			}
			loc, err := graph.NewLocator(sc.Graph)
			if err != nil {
				return err
			}

			id, dist := loc.Nearest(pt)
			pos := sc.Graph.Pos(id)
			fmt.Fprintf(cmd.OutOrStdout(), "node %d at (%g, %g), distance %.3f\n", id, pos[0], pos[1], dist)
			return nil
		},
	}
}
