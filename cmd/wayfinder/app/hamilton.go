package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/wayfinder/hamilton"
)

func newHamiltonCmd(opts *Options) *cobra.Command {
	var (
		maxInterior int
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "hamilton",
		Short: "List every route that visits each node exactly once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.Planner()
			if err != nil {
				return err
			}
			sc, err := p.Scenario(opts.Graph)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			res, err := hamilton.Cycles(sc.Graph,
				hamilton.WithContext(ctx),
				hamilton.WithMaxInterior(maxInterior),
			)
			if err != nil {
				return err
			}
			klog.V(2).Infof("graph %d: checked %d candidates", opts.Graph, res.Checked)

			out := cmd.OutOrStdout()
			if !res.Found() {
				fmt.Fprintln(out, "no hamiltonian route")
				return nil
			}
			for _, c := range res.Cycles {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxInterior, "max-interior", 10, "refuse graphs with more interior nodes (0: no limit)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the enumeration after this long (0: never)")
	return cmd
}
