package datafile

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/wayfinder/graph"
	"github.com/katalvlaran/wayfinder/gridgraph"
	"github.com/katalvlaran/wayfinder/pathing"
)

// File is the top-level document.
type File struct {
	Graphs []GraphSpec `json:"graphs"`
}

// GraphSpec describes one scenario. Exactly one of Nodes and Grid is set.
type GraphSpec struct {
	Name     string     `json:"name,omitempty"`
	Target   int        `json:"target"`
	TestPath []int      `json:"testPath,omitempty"`
	Nodes    []NodeSpec `json:"nodes,omitempty"`
	Grid     *GridSpec  `json:"grid,omitempty"`
}

// GridSpec describes a tile map. Cells is indexed [y][x]; Start, Exit and
// Target are [x, y] pairs. Target replaces GraphSpec.Target once the map
// is numbered.
type GridSpec struct {
	Cells     [][]int `json:"cells"`
	Threshold int     `json:"threshold,omitempty"`
	Diagonal  bool    `json:"diagonal,omitempty"`
	Start     [2]int  `json:"start"`
	Exit      [2]int  `json:"exit"`
	Target    [2]int  `json:"target"`
}

// NodeSpec is one node: its position and outgoing neighbors.
type NodeSpec struct {
	Pos       orb.Point `json:"pos"`
	Neighbors []int     `json:"neighbors,omitempty"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read data file %q", path)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return f, nil
}

// Decode parses YAML (or JSON) bytes. Unknown fields are rejected.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode graphs")
	}
	if len(f.Graphs) == 0 {
		return nil, errors.New("no graphs defined")
	}
	return &f, nil
}

// Encode renders f as YAML.
func Encode(f *File) ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "encode graphs")
	}
	return out, nil
}

// Scenarios builds a validated graph for every entry, in file order.
func (f *File) Scenarios() ([]pathing.Scenario, error) {
	out := make([]pathing.Scenario, 0, len(f.Graphs))
	for i, gs := range f.Graphs {
		sc, err := gs.scenario()
		if err != nil {
			return nil, errors.Wrapf(err, "graph %d (%s)", i, gs.Name)
		}
		out = append(out, sc)
	}
	return out, nil
}

func (gs GraphSpec) scenario() (pathing.Scenario, error) {
	sc := pathing.Scenario{Name: gs.Name, Target: gs.Target, TestPath: graph.Path(gs.TestPath)}

	switch {
	case gs.Grid != nil && len(gs.Nodes) > 0:
		return sc, errors.New("both nodes and grid given")
	case gs.Grid != nil:
		g, target, err := gs.Grid.build()
		if err != nil {
			return sc, err
		}
		sc.Graph, sc.Target = g, target
	default:
		nodes := make([]graph.Node, len(gs.Nodes))
		for j, ns := range gs.Nodes {
			nodes[j] = graph.Node{Pos: ns.Pos, Neighbors: ns.Neighbors}
		}
		g, err := graph.New(nodes)
		if err != nil {
			return sc, err
		}
		sc.Graph = g
	}

	if err := graph.CheckTarget(sc.Graph, sc.Target); err != nil {
		return sc, err
	}
	return sc, nil
}

func (gs *GridSpec) build() (*graph.Graph, int, error) {
	opts := gridgraph.DefaultGridOptions()
	if gs.Threshold > 0 {
		opts.LandThreshold = gs.Threshold
	}
	if gs.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(gs.Cells, opts)
	if err != nil {
		return nil, 0, err
	}

	cell := func(xy [2]int) gridgraph.Cell { return gridgraph.Cell{X: xy[0], Y: xy[1]} }
	g, m, err := gg.ToGraph(cell(gs.Start), cell(gs.Exit))
	if err != nil {
		return nil, 0, err
	}
	target, ok := m.Node(cell(gs.Target))
	if !ok {
		return nil, 0, errors.Wrapf(gridgraph.ErrNotWalkable, "target (%d,%d)", gs.Target[0], gs.Target[1])
	}
	return g, target, nil
}

// FromGraph renders g back into a GraphSpec.
func FromGraph(name string, g *graph.Graph, target int) GraphSpec {
	gs := GraphSpec{Name: name, Target: target, Nodes: make([]NodeSpec, g.Len())}
	for i := range gs.Nodes {
		gs.Nodes[i] = NodeSpec{Pos: g.Pos(i), Neighbors: g.Neighbors(i)}
	}
	return gs
}
