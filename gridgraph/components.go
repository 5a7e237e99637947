package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to gg.Conn connectivity. Each component is a slice of
// row-major cell indices in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Walkable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are walkable and share a component.
// It runs one BFS from a and stops as soon as b is reached.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Walkable(a.X, a.Y) || !gg.Walkable(b.X, b.Y) {
		return false
	}
	src, dst := gg.index(a.X, a.Y), gg.index(b.X, b.Y)
	if src == dst {
		return true
	}

	seen := make([]bool, gg.Width*gg.Height)
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Walkable(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if vi == dst {
				return true
			}
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
