package pathfinder

// reconstruct joins the forward chain (source cell to meeting cell) and the
// backward chain (meeting cell to destination cell). The meeting cell is
// listed once; when the two directions assigned it different points both are
// emitted, which keeps the join segment inside the meeting cell.
func (s *search) reconstruct(meeting CellID) ([]Point, []CellID) {
	fwd, bwd := s.trees[forward], s.trees[backward]

	cells := chain(fwd.prev, meeting)
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	path := make([]Point, 0, len(cells)+len(bwd.prev)+1)
	for _, id := range cells {
		path = appendPoint(path, fwd.points[id])
	}
	path = appendPoint(path, bwd.points[meeting])

	tail := chain(bwd.prev, meeting)[1:]
	for _, id := range tail {
		path = appendPoint(path, bwd.points[id])
	}
	cells = append(cells, tail...)

	return path, cells
}

// chain walks prev from id until it reaches a root, id first
func chain(prev map[CellID]CellID, id CellID) []CellID {
	cells := []CellID{id}
	for {
		previous, exists := prev[id]
		if !exists {
			return cells
		}
		cells = append(cells, previous)
		id = previous
	}
}

// appendPoint appends p unless it repeats the last point
func appendPoint(path []Point, p Point) []Point {
	if n := len(path); n > 0 && path[n-1] == p {
		return path
	}
	return append(path, p)
}

func pathLength(path []Point) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += path[i].Distance(path[i+1])
	}
	return total
}
