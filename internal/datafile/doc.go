// Package datafile reads and writes the YAML collection of graphs the
// wayfinder command plans over.
//
//	graphs:
//	  - name: square
//	    target: 1
//	    testPath: [0, 1, 3]
//	    nodes:
//	      - pos: [0, 0]
//	        neighbors: [1, 2]
//	      ...
//	  - name: maze
//	    grid:
//	      cells: [[1, 1, 1], [0, 0, 1], [1, 1, 1]]
//	      start: [0, 0]
//	      exit: [0, 2]
//	      target: [2, 1]
//
// Node order is significant: the first node is the start and the last one
// the exit of every route. A grid entry is numbered by gridgraph instead.
package datafile
