package gridgraph

// Reachable floods the grid from (sx,sy) over cells accepted by passable,
// using orthogonal connectivity. The start cell is always included.
// Returns a row‑major slice of flags; nil if the start is out of bounds.
//
// Time:   O(W·H).
// Memory: O(W·H) for the flags and queue.
func (gg *GridGraph) Reachable(sx, sy int, passable func(cost int) bool) []bool {
	if !gg.InBounds(sx, sy) {
		return nil
	}
	seen := make([]bool, gg.Width*gg.Height)
	i0 := gg.Index(sx, sy)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || (passable != nil && !passable(gg.cells[vy][vx])) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return seen
}
