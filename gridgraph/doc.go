// Package gridgraph turns a 2D tile map into a wayfinder graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//     Cells with value ≥ LandThreshold are walkable, the rest are walls.
//   - ToGraph numbers the walkable cells so that the chosen start cell is
//     node 0 and the chosen exit cell is node n-1; every other walkable cell
//     follows in row-major order. Node positions are the cell coordinates,
//     so diagonal steps under Conn8 weigh √2.
//   - ConnectedComponents and Connected answer reachability questions
//     before any search is run.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToGraph:             O(W×H×d + E log E), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellOutOfRange: a cell lies outside the grid.
//   - ErrNotWalkable: a start, exit or target cell is a wall.
//   - ErrSameCell: start and exit coincide.
package gridgraph
