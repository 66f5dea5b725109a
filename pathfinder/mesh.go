package pathfinder

import "sort"

// CellID is the stable index of a cell within its Mesh
type CellID int

// Mesh is an ordered, read-only collection of walkable boxes
type Mesh struct {
	boxes []Box
	index *cellIndex
}

// NewMesh copies boxes and indexes them. The id of each cell is its
// position in boxes.
func NewMesh(boxes []Box) *Mesh {
	owned := make([]Box, len(boxes))
	copy(owned, boxes)
	return &Mesh{
		boxes: owned,
		index: newCellIndex(owned),
	}
}

// Len returns the number of cells
func (m *Mesh) Len() int {
	return len(m.boxes)
}

// Box returns the bounds of a cell
func (m *Mesh) Box(id CellID) Box {
	return m.boxes[id]
}

// Boxes returns a copy of all cells in mesh order
func (m *Mesh) Boxes() []Box {
	out := make([]Box, len(m.boxes))
	copy(out, m.boxes)
	return out
}

// Locate finds the cell containing p. When p lies on a boundary shared by
// several cells the one earliest in mesh order wins.
func (m *Mesh) Locate(p Point) (CellID, bool) {
	found := CellID(-1)
	for _, id := range m.index.query(Box{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}) {
		if !m.boxes[id].Contains(p) {
			continue
		}
		if found < 0 || id < found {
			found = id
		}
	}
	return found, found >= 0
}

// Neighbors returns the cells touching id, in ascending id order. Cells that
// only share a corner are neighbors; cells with bounds identical to id are not.
func (m *Mesh) Neighbors(id CellID) []CellID {
	box := m.boxes[id]
	candidates := m.index.query(box)

	neighbors := make([]CellID, 0, len(candidates))
	for _, other := range candidates {
		otherBox := m.boxes[other]
		if other == id || otherBox == box {
			continue
		}
		if box.Touches(otherBox) {
			neighbors = append(neighbors, other)
		}
	}

	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}
