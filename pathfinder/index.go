package pathfinder

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// cellEntry wraps a mesh cell for R-tree storage
type cellEntry struct {
	ID   CellID
	BBox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *cellEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// cellIndex answers bounding box queries over the mesh cells. Stored and
// queried rectangles are padded by tolerance so that cells touching only
// along an edge or corner, and zero-width cells, are still reported; callers
// filter the candidates with exact inclusive tests.
type cellIndex struct {
	tree      *rtreego.Rtree
	tolerance float64
}

func newCellIndex(boxes []Box) *cellIndex {
	idx := &cellIndex{
		tree:      rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
		tolerance: indexTolerance(boxes),
	}

	for i, box := range boxes {
		rect, err := idx.rect(box)
		if err != nil {
			// inverted bounds; the cell can never contain a point
			continue
		}
		idx.tree.Insert(&cellEntry{ID: CellID(i), BBox: rect})
	}

	return idx
}

// query returns the ids of cells whose padded bounds intersect box
func (idx *cellIndex) query(box Box) []CellID {
	rect, err := idx.rect(box)
	if err != nil {
		return nil
	}

	results := idx.tree.SearchIntersect(rect)
	ids := make([]CellID, 0, len(results))
	for _, item := range results {
		ids = append(ids, item.(*cellEntry).ID)
	}
	return ids
}

func (idx *cellIndex) rect(box Box) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{box.MinX - idx.tolerance, box.MinY - idx.tolerance},
		[]float64{
			box.MaxX - box.MinX + 2*idx.tolerance,
			box.MaxY - box.MinY + 2*idx.tolerance,
		},
	)
}

// indexTolerance scales the padding with the magnitude of the coordinates
func indexTolerance(boxes []Box) float64 {
	magnitude := 1.0
	for _, b := range boxes {
		for _, v := range [...]float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
			magnitude = math.Max(magnitude, math.Abs(v))
		}
	}
	return magnitude * 1e-9
}
