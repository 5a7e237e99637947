package app

import (
	"github.com/spf13/cobra"
)

const ComponentName = "wayfinder"

// NewWayfinderCmd builds the root command with every subcommand attached.
func NewWayfinderCmd() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   ComponentName,
		Short: "Route finding over small 2D node graphs",
		Long: `wayfinder plans start→target→exit routes over the graphs of a YAML data
file with a random walk, DFS, BFS and Dijkstra, and scores them against the
Floyd–Warshall optimum.`,
		SilenceUsage: true,
	}
	opts.AddFlags(cmd.PersistentFlags())
	cmd.MarkPersistentFlagFilename("data", "yaml", "yml", "json")

	cmd.AddCommand(
		newPathsCmd(opts),
		newAPSPCmd(opts),
		newHamiltonCmd(opts),
		newNearestCmd(opts),
		newGenerateCmd(opts),
	)
	return cmd
}
