package gridgraph

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/wayfinder/graph"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid square.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered walkable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph is an immutable view of a tile map.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) checkCell(role string, c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %s (%d,%d) in %dx%d", ErrCellOutOfRange, role, c.X, c.Y, gg.Width, gg.Height)
	}
	if !gg.Walkable(c.X, c.Y) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrNotWalkable, role, c.X, c.Y)
	}
	return nil
}

// Mapping translates between graph node indices and grid cells.
type Mapping struct {
	cells []Cell       // node → cell
	nodes map[Cell]int // cell → node
}

// Node returns the graph node for c, if c is walkable.
func (m *Mapping) Node(c Cell) (int, bool) {
	id, ok := m.nodes[c]
	return id, ok
}

// Cell returns the grid cell of node id.
func (m *Mapping) Cell(id int) Cell { return m.cells[id] }

// Len returns the number of mapped nodes.
func (m *Mapping) Len() int { return len(m.cells) }

// ToGraph converts the walkable cells into a graph with start as node 0
// and exit as node n-1. Walls are omitted.
func (gg *GridGraph) ToGraph(start, exit Cell) (*graph.Graph, *Mapping, error) {
	if err := gg.checkCell("start", start); err != nil {
		return nil, nil, err
	}
	if err := gg.checkCell("exit", exit); err != nil {
		return nil, nil, err
	}
	if start == exit {
		return nil, nil, fmt.Errorf("%w: (%d,%d)", ErrSameCell, start.X, start.Y)
	}

	m := &Mapping{nodes: make(map[Cell]int)}
	add := func(c Cell) {
		m.nodes[c] = len(m.cells)
		m.cells = append(m.cells, c)
	}
	add(start)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if c == start || c == exit || !gg.Walkable(x, y) {
				continue
			}
			add(c)
		}
	}
	add(exit)

	nodes := make([]graph.Node, len(m.cells))
	for id, c := range m.cells {
		nodes[id].Pos = orb.Point{float64(c.X), float64(c.Y)}
		for _, d := range gg.offsets {
			if nb, ok := m.nodes[Cell{X: c.X + d[0], Y: c.Y + d[1]}]; ok {
				nodes[id].Neighbors = append(nodes[id].Neighbors, nb)
			}
		}
	}

	g, err := graph.New(nodes)
	if err != nil {
		return nil, nil, fmt.Errorf("gridgraph: %w", err)
	}
	return g, m, nil
}
