package pathfinder

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestMeshLocate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		boxes         []Box
		point         Point
		expectedCell  CellID
		expectedFound bool
	}{
		"single-cell": {
			boxes:         []Box{NewBox(0, 1, 0, 1)},
			point:         Point{0.5, 0.5},
			expectedCell:  0,
			expectedFound: true,
		},
		"second-cell": {
			boxes:         []Box{NewBox(0, 1, 0, 1), NewBox(1, 2, 0, 1)},
			point:         Point{1.8, 0.5},
			expectedCell:  1,
			expectedFound: true,
		},
		"shared-edge-first-wins": {
			boxes:         []Box{NewBox(0, 1, 0, 1), NewBox(1, 2, 0, 1)},
			point:         Point{1, 0.5},
			expectedCell:  0,
			expectedFound: true,
		},
		"shared-edge-first-wins-reversed": {
			boxes:         []Box{NewBox(1, 2, 0, 1), NewBox(0, 1, 0, 1)},
			point:         Point{1, 0.5},
			expectedCell:  0,
			expectedFound: true,
		},
		"outside-every-cell": {
			boxes:         []Box{NewBox(0, 1, 0, 1), NewBox(5, 6, 5, 6)},
			point:         Point{10, 10},
			expectedCell:  -1,
			expectedFound: false,
		},
		"empty-mesh": {
			boxes:         nil,
			point:         Point{0, 0},
			expectedCell:  -1,
			expectedFound: false,
		},
		"degenerate-cell": {
			boxes:         []Box{NewBox(3, 3, 0, 1)},
			point:         Point{3, 0.25},
			expectedCell:  0,
			expectedFound: true,
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cell, found := NewMesh(tc.boxes).Locate(tc.point)
			if found != tc.expectedFound || cell != tc.expectedCell {
				t.Errorf("expected (%d, %v), got (%d, %v)", tc.expectedCell, tc.expectedFound, cell, found)
			}
		})
	}
}

func TestMeshNeighbors(t *testing.T) {
	t.Parallel()

	// 0 1
	// 2 3   plus 4 touching 3 at a corner only, 5 far away, 6 a copy of 0
	boxes := []Box{
		NewBox(0, 1, 1, 2),
		NewBox(1, 2, 1, 2),
		NewBox(0, 1, 0, 1),
		NewBox(1, 2, 0, 1),
		NewBox(2, 3, -1, 0),
		NewBox(10, 11, 10, 11),
		NewBox(0, 1, 1, 2),
	}
	mesh := NewMesh(boxes)

	testCases := map[string]struct {
		cell     CellID
		expected []CellID
	}{
		"top-left":         {0, []CellID{1, 2, 3}},
		"bottom-right":     {3, []CellID{0, 1, 2, 4, 6}},
		"corner-only":      {4, []CellID{3}},
		"isolated":         {5, []CellID{}},
		"duplicate-bounds": {6, []CellID{1, 2, 3}},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := mesh.Neighbors(tc.cell)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestMeshNeighborsSymmetric(t *testing.T) {
	t.Parallel()

	mesh := NewMesh(randomBoxes(rand.New(rand.NewSource(7)), 120))
	for a := 0; a < mesh.Len(); a++ {
		for _, b := range mesh.Neighbors(CellID(a)) {
			if !containsCell(mesh.Neighbors(b), CellID(a)) {
				t.Fatalf("%d lists %d as neighbor but not the reverse", a, b)
			}
		}
	}
}

func TestMeshNeighborsMatchesBruteForce(t *testing.T) {
	t.Parallel()

	boxes := randomBoxes(rand.New(rand.NewSource(11)), 200)
	mesh := NewMesh(boxes)
	for a := range boxes {
		expected := []CellID{}
		for b := range boxes {
			if a != b && boxes[a] != boxes[b] && boxes[a].Touches(boxes[b]) {
				expected = append(expected, CellID(b))
			}
		}
		if got := mesh.Neighbors(CellID(a)); !reflect.DeepEqual(got, expected) {
			t.Fatalf("cell %d: expected %v, got %v", a, expected, got)
		}
	}
}

func TestMeshLocateEveryCellInterior(t *testing.T) {
	t.Parallel()

	boxes := gridBoxes(6, 4, nil)
	mesh := NewMesh(boxes)
	for i, box := range boxes {
		cell, found := mesh.Locate(box.Center())
		if !found || cell != CellID(i) {
			t.Errorf("center of %d located as (%d, %v)", i, cell, found)
		}
	}
}

// randomBoxes generates boxes on an integer lattice so that edge and corner
// contacts are common.
func randomBoxes(rng *rand.Rand, n int) []Box {
	boxes := make([]Box, 0, n)
	for i := 0; i < n; i++ {
		x := float64(rng.Intn(30))
		y := float64(rng.Intn(30))
		boxes = append(boxes, NewBox(x, x+float64(1+rng.Intn(3)), y, y+float64(1+rng.Intn(3))))
	}
	return boxes
}

// gridBoxes returns unit cells of a cols x rows grid, skipping holes
func gridBoxes(cols, rows int, holes map[[2]int]bool) []Box {
	var boxes []Box
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if holes[[2]int{col, row}] {
				continue
			}
			boxes = append(boxes, NewBox(float64(col), float64(col+1), float64(row), float64(row+1)))
		}
	}
	return boxes
}

func containsCell(cells []CellID, id CellID) bool {
	for _, c := range cells {
		if c == id {
			return true
		}
	}
	return false
}
