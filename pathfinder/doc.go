// Package pathfinder finds walkable routes through a navigation mesh made of
// axis-aligned boxes.
//
// A route is computed in three stages:
//
//   - Locate: the cells containing the source and destination points.
//   - Search: a bidirectional best-first search over cell adjacency, where
//     each cell gets a representative point clamped from its predecessor.
//   - Reconstruct: the two predecessor chains are joined at the meeting cell
//     into a polyline from source to destination.
//
// Adjacency is computed on demand from box overlap; a Mesh only keeps an
// R-tree over the boxes. A Mesh is read-only after NewMesh and may be shared
// by concurrent FindPath calls.
package pathfinder
