package pathfinder

import (
	"container/heap"
	"math"
)

// Role tags a cell in Result.Explored
type Role string

const (
	RoleStart   Role = "start"
	RoleEnd     Role = "end"
	RoleVisited Role = "visited"
)

// Result contains the outcome of FindPath
type Result struct {
	Path       []Point
	Cells      []CellID        // cell sequence from source cell to destination cell
	Explored   map[CellID]Role // cells touched by the search
	Cost       float64         // length of Path
	Expansions int
}

// Options defines parameters for the search.
type Options struct {
	// MaxExpansions caps the number of cells finalized across both
	// directions. Zero or less means unlimited.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions bounds the work a single search may do.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// FindPath searches for a path from source to destination through mesh.
//
// The returned path starts at source and ends at destination; every
// intermediate point lies on the boundary shared by two consecutive cells.
// The search stops at the first cell reached by both frontiers, so the path
// is not guaranteed to be the shortest one.
//
// On failure the error matches ErrPathNotFound, Path is empty and Explored
// holds whatever cells were tagged before the search gave up.
func FindPath(source, destination Point, mesh *Mesh, options ...Option) (Result, error) {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}

	result := Result{Explored: make(map[CellID]Role)}

	sourceCell, sourceFound := mesh.Locate(source)
	destinationCell, destinationFound := mesh.Locate(destination)
	if sourceFound {
		result.Explored[sourceCell] = RoleStart
	}
	if destinationFound {
		result.Explored[destinationCell] = RoleEnd
	}
	if !sourceFound {
		return result, &PathNotFoundError{Reason: ReasonSourceOutside}
	}
	if !destinationFound {
		return result, &PathNotFoundError{Reason: ReasonDestinationOutside}
	}

	if sourceCell == destinationCell {
		result.Path = []Point{source, destination}
		result.Cells = []CellID{sourceCell}
		result.Cost = source.Distance(destination)
		return result, nil
	}

	s := &search{mesh: mesh, explored: result.Explored}
	s.trees[forward] = newTree(sourceCell, source, destination)
	s.trees[backward] = newTree(destinationCell, destination, source)
	heap.Init(&s.open)
	s.push(sourceCell, forward)
	s.push(destinationCell, backward)

	meeting, reason := s.run(searchOptions.MaxExpansions)
	result.Expansions = s.expansions
	if reason != 0 {
		return result, &PathNotFoundError{Reason: reason}
	}

	result.Path, result.Cells = s.reconstruct(meeting)
	result.Cost = pathLength(result.Path)
	return result, nil
}

// tree is the state of one search direction
type tree struct {
	cost   map[CellID]float64 // absent means unreached; read through costOf
	prev   map[CellID]CellID  // the root has no entry
	points map[CellID]Point   // representative point per reached cell
	closed map[CellID]bool
	target Point
}

func newTree(root CellID, origin, target Point) *tree {
	return &tree{
		cost:   map[CellID]float64{root: 0},
		prev:   make(map[CellID]CellID),
		points: map[CellID]Point{root: origin},
		closed: make(map[CellID]bool),
		target: target,
	}
}

// costOf returns the best known cost to reach id, +Inf if unreached
func (t *tree) costOf(id CellID) float64 {
	if cost, ok := t.cost[id]; ok {
		return cost
	}
	return math.Inf(1)
}

type search struct {
	mesh       *Mesh
	trees      [2]*tree
	open       frontier
	seq        int
	expansions int
	explored   map[CellID]Role
}

func (s *search) push(id CellID, dir direction) {
	t := s.trees[dir]
	heap.Push(&s.open, &frontierItem{
		Cell:     id,
		Dir:      dir,
		Priority: t.costOf(id) + t.points[id].Distance(t.target),
		Seq:      s.seq,
	})
	s.seq++
}

// run pops entries until a cell finalized by one direction is popped by the
// other. It returns the meeting cell, or a non-zero Reason on failure.
func (s *search) run(maxExpansions int) (CellID, Reason) {
	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(*frontierItem)
		own := s.trees[current.Dir]

		// stale duplicate of an already finalized entry
		if own.closed[current.Cell] {
			continue
		}
		if s.trees[current.Dir.opposite()].closed[current.Cell] {
			return current.Cell, 0
		}
		if maxExpansions > 0 && s.expansions >= maxExpansions {
			return -1, ReasonSearchLimit
		}

		own.closed[current.Cell] = true
		s.expansions++
		s.expand(current.Cell, current.Dir)
	}

	return -1, ReasonDisconnected
}

// expand relaxes the neighbors of id. A neighbor's representative point is
// the current point clamped into the neighbor's box, and the edge cost is the
// distance between the two points.
func (s *search) expand(id CellID, dir direction) {
	t := s.trees[dir]
	from := t.points[id]
	costSoFar := t.costOf(id)

	for _, neighbor := range s.mesh.Neighbors(id) {
		if t.closed[neighbor] {
			continue
		}

		point := s.mesh.Box(neighbor).Clamp(from)
		tentative := costSoFar + from.Distance(point)
		if tentative >= t.costOf(neighbor) {
			continue
		}

		t.cost[neighbor] = tentative
		t.prev[neighbor] = id
		t.points[neighbor] = point
		if _, tagged := s.explored[neighbor]; !tagged {
			s.explored[neighbor] = RoleVisited
		}
		s.push(neighbor, dir)
	}
}
