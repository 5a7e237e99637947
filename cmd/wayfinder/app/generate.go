package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/internal/datafile"
)

type generateOptions struct {
	kind   string
	n      int
	rows   int
	cols   int
	p      float64
	scale  float64
	target int
}

func newGenerateCmd(opts *Options) *cobra.Command {
	o := &generateOptions{kind: "grid", n: 6, rows: 3, cols: 3, p: 0.3, scale: 1, target: 1}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph as a data file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := o.build(opts.Seed)
			if err != nil {
				return err
			}
			if err = graph.CheckTarget(g, o.target); err != nil {
				return err
			}
			out, err := datafile.Encode(&datafile.File{
				Graphs: []datafile.GraphSpec{datafile.FromGraph(o.kind, g, o.target)},
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.kind, "kind", o.kind, "line, cycle, grid, complete or sparse")
	fs.IntVar(&o.n, "n", o.n, "node count for line, cycle, complete and sparse")
	fs.IntVar(&o.rows, "rows", o.rows, "grid rows")
	fs.IntVar(&o.cols, "cols", o.cols, "grid columns")
	fs.Float64Var(&o.p, "p", o.p, "edge probability for sparse")
	fs.Float64Var(&o.scale, "scale", o.scale, "coordinate scale")
	fs.IntVar(&o.target, "target", o.target, "target node written to the file")
	return cmd
}

func (o *generateOptions) build(seed int64) (*graph.Graph, error) {
	opts := []builder.Option{builder.WithScale(o.scale), builder.WithSeed(seed)}
	switch o.kind {
	case "line":
		return builder.Line(o.n, opts...)
	case "cycle":
		return builder.Cycle(o.n, opts...)
	case "grid":
		return builder.Grid(o.rows, o.cols, opts...)
	case "complete":
		return builder.Complete(o.n, opts...)
	case "sparse":
		return builder.RandomSparse(o.n, o.p, opts...)
	default:
		return nil, fmt.Errorf("unknown kind %q", o.kind)
	}
}
