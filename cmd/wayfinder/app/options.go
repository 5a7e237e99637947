package app

import (
	goflag "flag"
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/wayfinder/internal/datafile"
	"github.com/katalvlaran/wayfinder/pathing"
)

// Options are the flags shared by every subcommand.
type Options struct {
	DataFile string
	Graph    int
	Seed     int64
	Retries  int
}

// NewOptions returns the defaults.
func NewOptions() *Options {
	return &Options{
		DataFile: "graphs.yaml",
		Retries:  20,
	}
}

// AddFlags registers the shared flags and klog's own flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.DataFile, "data", o.DataFile, "YAML file holding the graph collection")
	fs.IntVarP(&o.Graph, "graph", "g", o.Graph, "index of the graph to work on")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for the random walk and for generate (0 selects the fixed default)")
	fs.IntVar(&o.Retries, "retries", o.Retries, "random-walk attempts before giving up")

	gofs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(gofs)
	fs.AddGoFlagSet(gofs)
}

// Validate reports flag values that can never work.
func (o *Options) Validate() error {
	if o.DataFile == "" {
		return fmt.Errorf("--data must not be empty")
	}
	if o.Retries < 1 {
		return fmt.Errorf("--retries must be at least 1, got %d", o.Retries)
	}
	if o.Graph < 0 {
		return fmt.Errorf("--graph must not be negative, got %d", o.Graph)
	}
	return nil
}

// Planner loads the data file and builds a Planner over it.
func (o *Options) Planner() (*pathing.Planner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	f, err := datafile.Load(o.DataFile)
	if err != nil {
		return nil, err
	}
	scs, err := f.Scenarios()
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("loaded %d graphs from %s", len(scs), o.DataFile)
	return pathing.NewPlanner(scs, pathing.WithSeed(o.Seed), pathing.WithMaxRetries(o.Retries))
}
