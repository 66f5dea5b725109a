package pathfinder

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a location in mesh coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Orb converts the point for use with orb geometry
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return planar.Distance(p.Orb(), other.Orb())
}

// Box is an axis-aligned mesh cell. Bounds are inclusive.
type Box struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// NewBox builds a box from the (x1, x2, y1, y2) tuple order used by mesh files
func NewBox(x1, x2, y1, y2 float64) Box {
	return Box{MinX: x1, MaxX: x2, MinY: y1, MaxY: y2}
}

// Bound returns the box as an orb.Bound
func (b Box) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinX, b.MinY},
		Max: orb.Point{b.MaxX, b.MaxY},
	}
}

// Contains reports whether p lies inside the box or on its edge
func (b Box) Contains(p Point) bool {
	return b.Bound().Contains(p.Orb())
}

// Touches reports whether both ranges of the two boxes overlap, including
// contact along an edge or at a single corner.
func (b Box) Touches(other Box) bool {
	return b.Bound().Intersects(other.Bound())
}

// Clamp returns the point of the box closest to p on each axis
func (b Box) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.MinX, b.MaxX),
		Y: clamp(p.Y, b.MinY, b.MaxY),
	}
}

// Center returns the midpoint of the box
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
